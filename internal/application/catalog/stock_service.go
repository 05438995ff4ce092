package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/amconceito/storefront/internal/domain/catalog"
)

// StockService handles stock-variant operations. Every mutation ends by
// recomputing the product's cached total stock from its variants.
type StockService struct {
	productRepo catalog.ProductRepository
}

// NewStockService creates a new StockService
func NewStockService(productRepo catalog.ProductRepository) *StockService {
	return &StockService{productRepo: productRepo}
}

// AddVariant adds a size/color variant to a product
func (s *StockService) AddVariant(ctx context.Context, productID uuid.UUID, req AddVariantRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	quantity := 0
	if n, ok := parseLenientInt(req.Quantity); ok {
		quantity = n
	}

	var color *string
	if req.Color != "" {
		color = &req.Color
	}

	price, _ := parseLenientDecimal(req.Price)

	if _, err := product.AddVariant(req.Size, color, quantity, price); err != nil {
		return nil, err
	}
	product.RecomputeTotalStock()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// UpdateVariant updates a variant's quantity, price and availability.
// Unparseable numeric form values keep the stored ones.
func (s *StockService) UpdateVariant(ctx context.Context, variantID uuid.UUID, req UpdateVariantRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByVariantID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if quantity, ok := parseLenientInt(req.Quantity); ok {
		if err := product.RecordVariantQuantity(variantID, quantity, req.IsAvailable); err != nil {
			return nil, err
		}
	} else if err := product.SetVariantAvailability(variantID, req.IsAvailable); err != nil {
		return nil, err
	}

	if price, ok := parseLenientDecimal(req.Price); ok {
		if err := product.SetVariantPrice(variantID, price); err != nil {
			return nil, err
		}
	}

	product.RecomputeTotalStock()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// DeleteVariant removes a variant from its product
func (s *StockService) DeleteVariant(ctx context.Context, variantID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByVariantID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if err := product.RemoveVariant(variantID); err != nil {
		return nil, err
	}
	product.RecomputeTotalStock()

	if err := s.productRepo.DeleteVariant(ctx, variantID); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}
