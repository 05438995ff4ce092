package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amconceito/storefront/internal/domain/identity"
	"github.com/amconceito/storefront/internal/domain/shared"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*identity.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token for valid credentials", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(adminRepo, tokens, zap.NewNop())

		admin, err := identity.NewAdmin("admin", "admin123")
		require.NoError(t, err)

		adminRepo.On("FindByUsername", ctx, "admin").Return(admin, nil)
		tokens.On("Issue", "admin").Return("token-123", nil)

		token, err := service.Login(ctx, "admin", "admin123")

		require.NoError(t, err)
		assert.Equal(t, "token-123", token)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(adminRepo, tokens, zap.NewNop())

		admin, err := identity.NewAdmin("admin", "admin123")
		require.NoError(t, err)

		adminRepo.On("FindByUsername", ctx, "admin").Return(admin, nil)

		_, err = service.Login(ctx, "admin", "wrong")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
		tokens.AssertNotCalled(t, "Issue")
	})

	t.Run("unknown username yields the same error", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(adminRepo, tokens, zap.NewNop())

		adminRepo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, "ghost", "whatever")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates bootstrap account when none exists", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(adminRepo, tokens, zap.NewNop())

		adminRepo.On("Count", ctx).Return(int64(0), nil)
		adminRepo.On("Save", ctx, mock.AnythingOfType("*identity.Admin")).Return(nil)

		require.NoError(t, service.EnsureAdmin(ctx, "admin", "admin123"))
		adminRepo.AssertExpectations(t)
	})

	t.Run("leaves an existing account untouched", func(t *testing.T) {
		adminRepo := new(MockAdminRepository)
		tokens := new(MockTokenIssuer)
		service := NewAuthService(adminRepo, tokens, zap.NewNop())

		adminRepo.On("Count", ctx).Return(int64(1), nil)

		require.NoError(t, service.EnsureAdmin(ctx, "admin", "admin123"))
		adminRepo.AssertNotCalled(t, "Save")
	})
}
