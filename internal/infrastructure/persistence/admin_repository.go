package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amconceito/storefront/internal/domain/identity"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// GormAdminRepository implements identity.AdminRepository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByUsername returns the admin with the given username
func (r *GormAdminRepository) FindByUsername(ctx context.Context, username string) (*identity.Admin, error) {
	var admin identity.Admin
	if err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Count returns the number of admin accounts
func (r *GormAdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&identity.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists an admin account
func (r *GormAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}
