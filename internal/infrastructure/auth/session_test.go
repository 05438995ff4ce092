package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amconceito/storefront/internal/infrastructure/config"
)

func newTestManager(ttl time.Duration) *SessionManager {
	return NewSessionManager(&config.SessionConfig{
		Secret: "test-secret-key-with-enough-length",
		TTL:    ttl,
	})
}

func TestSessionManager_IssueAndValidate(t *testing.T) {
	manager := newTestManager(time.Hour)

	token, err := manager.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestSessionManager_Validate_Expired(t *testing.T) {
	manager := newTestManager(-time.Minute)

	token, err := manager.Issue("admin")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionManager_Validate_Garbage(t *testing.T) {
	manager := newTestManager(time.Hour)

	_, err := manager.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_Validate_WrongSecret(t *testing.T) {
	issuer := newTestManager(time.Hour)
	verifier := NewSessionManager(&config.SessionConfig{
		Secret: "a-completely-different-secret-key",
		TTL:    time.Hour,
	})

	token, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
