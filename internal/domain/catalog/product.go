package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the aggregate root of the catalog. It exclusively owns its
// images and stock variants: deleting a product deletes both.
//
// TotalStock is a cached aggregate of the variant quantities, not a live
// computed column. Every variant mutation must be followed by
// RecomputeTotalStock (AddVariant does this itself) or the cache drifts.
type Product struct {
	shared.BaseAggregateRoot
	Name             string           `gorm:"type:varchar(200);not null"`
	Description      string           `gorm:"type:text"`
	Price            decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountPrice    *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Category         string           `gorm:"type:varchar(100)"`
	TotalStock       int              `gorm:"not null;default:0"`
	ClassificationID *uuid.UUID       `gorm:"type:uuid;index"`
	Images           []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants         []StockVariant   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Price:             price,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrice sets the base price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetDiscountPrice sets or clears the promotional price. The original
// system never validated discount against the base price; this stays an
// open product decision, so no ordering check is made here.
func (p *Product) SetDiscountPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Discount price cannot be negative")
	}

	p.DiscountPrice = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory sets the free-form category label
func (p *Product) SetCategory(category string) {
	p.Category = category
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetClassification assigns the product to a classification (nil detaches)
func (p *Product) SetClassification(classificationID *uuid.UUID) {
	p.ClassificationID = classificationID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// EffectivePrice returns the price customers pay: the discount price when
// present, otherwise the base price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasClassification returns true if the product belongs to a classification
func (p *Product) HasClassification() bool {
	return p.ClassificationID != nil
}

// AddImage appends an image record for an uploaded blob
func (p *Product) AddImage(url string) (*ProductImage, error) {
	if url == "" {
		return nil, shared.NewDomainError("MISSING_REQUIRED_FIELD", "Image URL is required")
	}

	img := ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  p.ID,
		URL:        url,
	}
	p.Images = append(p.Images, img)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return &p.Images[len(p.Images)-1], nil
}

// RemoveImage removes an image record from the collection
func (p *Product) RemoveImage(imageID uuid.UUID) error {
	for i := range p.Images {
		if p.Images[i].ID == imageID {
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Image not found")
}

// AddVariant creates a new (size[, color]) stock variant. Size and color
// are trimmed; a trimmed-empty size is rejected, a trimmed-empty color is
// treated as "no color dimension". The (size, color) pair must be unique
// per product (exact, case-sensitive match). Availability follows the
// initial quantity, and TotalStock absorbs it immediately.
func (p *Product) AddVariant(size string, color *string, quantity int, price *decimal.Decimal) (*StockVariant, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return nil, shared.NewDomainError("MISSING_REQUIRED_FIELD", "Size is required for a stock variant")
	}
	if color != nil {
		trimmed := strings.TrimSpace(*color)
		if trimmed == "" {
			color = nil
		} else {
			color = &trimmed
		}
	}
	if quantity < 0 {
		return nil, shared.ErrInvalidQuantity
	}
	if price != nil && price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}

	for i := range p.Variants {
		if p.Variants[i].matches(size, color) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A variant with this size already exists")
		}
	}

	variant := StockVariant{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   p.ID,
		Size:        size,
		Color:       color,
		Quantity:    quantity,
		Price:       price,
		IsAvailable: quantity > 0,
	}
	p.Variants = append(p.Variants, variant)
	p.TotalStock += quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return &p.Variants[len(p.Variants)-1], nil
}

// RecordVariantQuantity sets a variant's quantity and availability.
// A zero quantity forces the variant unavailable regardless of the
// requested flag; a nonzero quantity takes the requested flag as-is, so
// an admin can keep a stocked variant hidden. The parent's TotalStock is
// NOT touched: callers follow up with RecomputeTotalStock.
func (p *Product) RecordVariantQuantity(variantID uuid.UUID, quantity int, requestedAvailable bool) error {
	if quantity < 0 {
		return shared.ErrInvalidQuantity
	}

	variant := p.findVariant(variantID)
	if variant == nil {
		return shared.NewDomainError("NOT_FOUND", "Stock variant not found")
	}

	variant.Quantity = quantity
	if quantity == 0 {
		variant.IsAvailable = false
	} else {
		variant.IsAvailable = requestedAvailable
	}
	variant.UpdatedAt = time.Now()

	return nil
}

// SetVariantAvailability toggles a variant's availability without
// touching its quantity. A variant with nothing in stock stays
// unavailable.
func (p *Product) SetVariantAvailability(variantID uuid.UUID, available bool) error {
	variant := p.findVariant(variantID)
	if variant == nil {
		return shared.NewDomainError("NOT_FOUND", "Stock variant not found")
	}

	if variant.Quantity == 0 {
		variant.IsAvailable = false
	} else {
		variant.IsAvailable = available
	}
	variant.UpdatedAt = time.Now()

	return nil
}

// SetVariantPrice sets or clears a variant-specific price override
func (p *Product) SetVariantPrice(variantID uuid.UUID, price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
	}

	variant := p.findVariant(variantID)
	if variant == nil {
		return shared.NewDomainError("NOT_FOUND", "Stock variant not found")
	}

	variant.Price = price
	variant.UpdatedAt = time.Now()

	return nil
}

// RemoveVariant removes a variant from the collection. Callers must
// follow up with RecomputeTotalStock.
func (p *Product) RemoveVariant(variantID uuid.UUID) error {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			p.Variants = append(p.Variants[:i], p.Variants[i+1:]...)
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Stock variant not found")
}

// RecomputeTotalStock re-derives the cached total from the variant
// quantities and returns it. Called after every variant mutation; this is
// a manual protocol, skipping it leaves the cache stale.
func (p *Product) RecomputeTotalStock() int {
	total := 0
	for i := range p.Variants {
		total += p.Variants[i].Quantity
	}
	p.TotalStock = total
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return total
}

// AvailableSizes returns the deduplicated, sorted sizes of variants that
// still have stock.
func (p *Product) AvailableSizes() []string {
	seen := make(map[string]struct{})
	sizes := make([]string, 0, len(p.Variants))
	for i := range p.Variants {
		v := &p.Variants[i]
		if !v.InStock() {
			continue
		}
		if _, ok := seen[v.Size]; ok {
			continue
		}
		seen[v.Size] = struct{}{}
		sizes = append(sizes, v.Size)
	}
	sort.Strings(sizes)
	return sizes
}

// findVariant returns the variant with the given ID, or nil
func (p *Product) findVariant(variantID uuid.UUID) *StockVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("MISSING_REQUIRED_FIELD", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
