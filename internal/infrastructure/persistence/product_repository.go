package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amconceito/storefront/internal/domain/catalog"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product with its images and variants
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Variants").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByVariantID finds the product owning the given stock variant
func (r *GormProductRepository) FindByVariantID(ctx context.Context, variantID uuid.UUID) (*catalog.Product, error) {
	var variant catalog.StockVariant
	if err := r.db.WithContext(ctx).
		First(&variant, "id = ?", variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.FindByID(ctx, variant.ProductID)
}

// FindAll finds all products with their images and variants, newest
// first, optionally filtered by a case-insensitive name substring.
func (r *GormProductRepository) FindAll(ctx context.Context, search string) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Variants").
		Order("created_at DESC")

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var products []catalog.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product with its owned collections
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error
	})
}

// Delete deletes a product; image and variant rows cascade
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteVariant removes a single stock variant row
func (r *GormProductRepository) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.StockVariant{}, "id = ?", variantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindImageByID finds a single image record
func (r *GormProductRepository) FindImageByID(ctx context.Context, imageID uuid.UUID) (*catalog.ProductImage, error) {
	var image catalog.ProductImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// DeleteImage removes a single image record
func (r *GormProductRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductImage{}, "id = ?", imageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByClassification counts products referencing a classification
func (r *GormProductRepository) CountByClassification(ctx context.Context, classificationID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("classification_id = ?", classificationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
