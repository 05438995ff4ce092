package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence.
// Products load with their images and variants; Save persists the whole
// aggregate including collection changes.
type ProductRepository interface {
	// FindByID finds a product with its images and variants
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByVariantID finds the product owning the given stock variant
	FindByVariantID(ctx context.Context, variantID uuid.UUID) (*Product, error)

	// FindAll finds all products, optionally filtered by a
	// case-insensitive substring match on the name
	FindAll(ctx context.Context, search string) ([]Product, error)

	// Save creates or updates a product and its owned collections
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product; images and variants cascade
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteVariant removes a single stock variant row
	DeleteVariant(ctx context.Context, variantID uuid.UUID) error

	// FindImageByID finds a single image record
	FindImageByID(ctx context.Context, imageID uuid.UUID) (*ProductImage, error)

	// DeleteImage removes a single image record
	DeleteImage(ctx context.Context, imageID uuid.UUID) error

	// CountByClassification counts products referencing a classification
	CountByClassification(ctx context.Context, classificationID uuid.UUID) (int64, error)
}
