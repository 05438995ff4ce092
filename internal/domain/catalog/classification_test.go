package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassification(t *testing.T) {
	t.Run("creates classification with trimmed name", func(t *testing.T) {
		classification, err := NewClassification("  Vestidos  ", 3)

		require.NoError(t, err)
		assert.Equal(t, "Vestidos", classification.Name)
		assert.Equal(t, 3, classification.DisplayOrder)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewClassification("   ", 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}

func TestClassification_SetDisplayOrder(t *testing.T) {
	classification, err := NewClassification("Vestidos", 1)
	require.NoError(t, err)

	classification.SetDisplayOrder(5)

	assert.Equal(t, 5, classification.DisplayOrder)
}
