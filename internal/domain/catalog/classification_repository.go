package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ClassificationRepository defines the interface for classification persistence
type ClassificationRepository interface {
	// FindByID finds a classification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Classification, error)

	// FindAll finds all classifications ordered by display order, then name
	FindAll(ctx context.Context) ([]Classification, error)

	// ExistsByName checks for an exact name match
	ExistsByName(ctx context.Context, name string) (bool, error)

	// MaxDisplayOrder returns the highest display order, 0 when empty
	MaxDisplayOrder(ctx context.Context) (int, error)

	// Save creates or updates a classification
	Save(ctx context.Context, classification *Classification) error

	// Delete deletes a classification
	Delete(ctx context.Context, id uuid.UUID) error
}
