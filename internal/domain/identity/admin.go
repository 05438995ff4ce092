package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amconceito/storefront/internal/domain/shared"
)

// Password cost for bcrypt
const bcryptCost = 12

// Admin represents the single administrative account of the store.
// It is the aggregate root for authentication.
type Admin struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Admin) TableName() string {
	return "admin"
}

// NewAdmin creates an admin account with a freshly hashed password
func NewAdmin(username, password string) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Admin{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      hash,
	}, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (a *Admin) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword replaces the stored hash with one for the new password
func (a *Admin) ChangePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	a.PasswordHash = hash
	a.IncrementVersion()
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
