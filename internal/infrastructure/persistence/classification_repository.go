package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amconceito/storefront/internal/domain/catalog"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// GormClassificationRepository implements catalog.ClassificationRepository using GORM
type GormClassificationRepository struct {
	db *gorm.DB
}

// NewGormClassificationRepository creates a new GormClassificationRepository
func NewGormClassificationRepository(db *gorm.DB) *GormClassificationRepository {
	return &GormClassificationRepository{db: db}
}

// FindByID finds a classification by its ID
func (r *GormClassificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Classification, error) {
	var classification catalog.Classification
	if err := r.db.WithContext(ctx).First(&classification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &classification, nil
}

// FindAll finds all classifications ordered by display order, then name
func (r *GormClassificationRepository) FindAll(ctx context.Context) ([]catalog.Classification, error) {
	var classifications []catalog.Classification
	if err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&classifications).Error; err != nil {
		return nil, err
	}
	return classifications, nil
}

// ExistsByName checks for an exact name match
func (r *GormClassificationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Classification{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MaxDisplayOrder returns the highest display order, 0 when empty
func (r *GormClassificationRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&catalog.Classification{}).
		Select("MAX(display_order)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// Save creates or updates a classification
func (r *GormClassificationRepository) Save(ctx context.Context, classification *catalog.Classification) error {
	return r.db.WithContext(ctx).Save(classification).Error
}

// Delete deletes a classification
func (r *GormClassificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Classification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
