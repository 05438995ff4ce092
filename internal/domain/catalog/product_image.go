package catalog

import (
	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductImage represents a single image attached to a product.
// URL is the public locator of the blob in the external object store;
// deleting the row is the record of truth, the blob delete is best-effort.
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(300);not null"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}
