package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/amconceito/storefront/internal/domain/identity"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// TokenIssuer mints admin session tokens
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthService handles admin authentication
type AuthService struct {
	adminRepo identity.AdminRepository
	tokens    TokenIssuer
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo identity.AdminRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies the credential pair and returns a session token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		return "", err
	}

	if !admin.VerifyPassword(password) {
		return "", shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, err := s.tokens.Issue(admin.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the bootstrap admin account when none exists.
// Called once at startup; an existing account is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin, err := identity.NewAdmin(username, password)
	if err != nil {
		return err
	}
	if err := s.adminRepo.Save(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("bootstrap admin account created", zap.String("username", username))
	return nil
}
