package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amconceito/storefront/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name             string     `json:"name" binding:"required,min=1,max=200"`
	Description      string     `json:"description" binding:"max=2000"`
	Price            string     `json:"price" binding:"required"`
	DiscountPrice    string     `json:"discount_price"`
	Category         string     `json:"category" binding:"max=100"`
	ClassificationID *uuid.UUID `json:"classification_id"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name             string     `json:"name" binding:"required,min=1,max=200"`
	Description      string     `json:"description" binding:"max=2000"`
	Price            string     `json:"price" binding:"required"`
	DiscountPrice    string     `json:"discount_price"`
	Category         string     `json:"category" binding:"max=100"`
	ClassificationID *uuid.UUID `json:"classification_id"`
}

// AddVariantRequest represents a request to add a stock variant to a product
type AddVariantRequest struct {
	Size     string `json:"size" binding:"required,min=1,max=50"`
	Color    string `json:"color" binding:"max=50"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// UpdateVariantRequest represents a request to update a stock variant.
// Quantity and Price arrive as raw form strings; unparseable values keep
// the stored ones.
type UpdateVariantRequest struct {
	VariantID   uuid.UUID `json:"variant_id" binding:"required"`
	Quantity    string    `json:"quantity"`
	Price       string    `json:"price"`
	IsAvailable bool      `json:"is_available"`
}

// VariantResponse represents a stock variant in API responses
type VariantResponse struct {
	ID          uuid.UUID        `json:"id"`
	Size        string           `json:"size"`
	Color       *string          `json:"color"`
	Quantity    int              `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	IsAvailable bool             `json:"is_available"`
}

// ImageResponse represents a product image in API responses
type ImageResponse struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Price            decimal.Decimal   `json:"price"`
	DiscountPrice    *decimal.Decimal  `json:"discount_price"`
	EffectivePrice   decimal.Decimal   `json:"effective_price"`
	Category         string            `json:"category"`
	TotalStock       int               `json:"total_stock"`
	ClassificationID *uuid.UUID        `json:"classification_id"`
	AvailableSizes   []string          `json:"available_sizes"`
	Images           []ImageResponse   `json:"images"`
	Variants         []VariantResponse `json:"variants"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ProductListResponse represents a product list item
type ProductListResponse struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Price            decimal.Decimal  `json:"price"`
	DiscountPrice    *decimal.Decimal `json:"discount_price"`
	EffectivePrice   decimal.Decimal  `json:"effective_price"`
	Category         string           `json:"category"`
	TotalStock       int              `json:"total_stock"`
	ClassificationID *uuid.UUID       `json:"classification_id"`
	ImageURL         string           `json:"image_url"`
}

// ClassificationGroup is one storefront section: a classification and
// the products assigned to it. Unclassified products land in a trailing
// group with a nil classification.
type ClassificationGroup struct {
	Classification *ClassificationResponse `json:"classification"`
	Products       []ProductListResponse   `json:"products"`
}

// CreateClassificationRequest represents a request to create a classification
type CreateClassificationRequest struct {
	Name string `json:"name" binding:"required,min=1,max=150"`
}

// ReorderClassificationsRequest maps classification IDs to their new
// display order, both as raw form strings. Unknown IDs and unparseable
// order values are skipped.
type ReorderClassificationsRequest struct {
	Orders map[string]string `json:"orders" binding:"required"`
}

// ClassificationResponse represents a classification in API responses
type ClassificationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
}

// ToVariantResponse converts a domain StockVariant to VariantResponse
func ToVariantResponse(v catalog.StockVariant) VariantResponse {
	return VariantResponse{
		ID:          v.ID,
		Size:        v.Size,
		Color:       v.Color,
		Quantity:    v.Quantity,
		Price:       v.Price,
		IsAvailable: v.IsAvailable,
	}
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{ID: img.ID, URL: img.URL})
	}

	variants := make([]VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, ToVariantResponse(v))
	}

	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		DiscountPrice:    p.DiscountPrice,
		EffectivePrice:   p.EffectivePrice(),
		Category:         p.Category,
		TotalStock:       p.TotalStock,
		ClassificationID: p.ClassificationID,
		AvailableSizes:   p.AvailableSizes(),
		Images:           images,
		Variants:         variants,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToProductListResponse converts a domain Product to ProductListResponse
func ToProductListResponse(p *catalog.Product) ProductListResponse {
	imageURL := ""
	if len(p.Images) > 0 {
		imageURL = p.Images[0].URL
	}

	return ProductListResponse{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		DiscountPrice:    p.DiscountPrice,
		EffectivePrice:   p.EffectivePrice(),
		Category:         p.Category,
		TotalStock:       p.TotalStock,
		ClassificationID: p.ClassificationID,
		ImageURL:         imageURL,
	}
}

// ToClassificationResponse converts a domain Classification to ClassificationResponse
func ToClassificationResponse(c *catalog.Classification) ClassificationResponse {
	return ClassificationResponse{
		ID:           c.ID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
	}
}
