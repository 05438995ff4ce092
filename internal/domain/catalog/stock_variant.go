package catalog

import (
	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockVariant represents a (size[, color]) combination of a product with
// its own quantity, optional price override and availability flag.
// It is owned by the Product aggregate; all mutations go through Product.
type StockVariant struct {
	shared.BaseEntity
	ProductID   uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_variant_product_size_color,priority:1"`
	Size        string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_product_size_color,priority:2"`
	Color       *string          `gorm:"type:varchar(50);uniqueIndex:idx_variant_product_size_color,priority:3"`
	Quantity    int              `gorm:"not null;default:0"`
	Price       *decimal.Decimal `gorm:"type:decimal(18,2)"`
	IsAvailable bool             `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (StockVariant) TableName() string {
	return "product_stock"
}

// InStock returns true if the variant has stock left
func (v *StockVariant) InStock() bool {
	return v.Quantity > 0
}

// HasColor returns true if the variant carries a color dimension
func (v *StockVariant) HasColor() bool {
	return v.Color != nil
}

// matches reports whether the variant occupies the given (size, color)
// slot. Matching is exact and case-sensitive; a nil color only matches
// variants without a color dimension.
func (v *StockVariant) matches(size string, color *string) bool {
	if v.Size != size {
		return false
	}
	if v.Color == nil || color == nil {
		return v.Color == nil && color == nil
	}
	return *v.Color == *color
}
