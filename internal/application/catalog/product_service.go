package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amconceito/storefront/internal/domain/catalog"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo        catalog.ProductRepository
	classificationRepo catalog.ClassificationRepository
	storage            ObjectStorage
}

// ListGrouped returns the storefront view: products grouped by
// classification in display order, with unclassified products in a
// trailing group.
func (s *ProductService) ListGrouped(ctx context.Context, search string) ([]ClassificationGroup, error) {
	classifications, err := s.classificationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}

	byClassification := make(map[uuid.UUID][]ProductListResponse)
	unclassified := make([]ProductListResponse, 0)
	for i := range products {
		item := ToProductListResponse(&products[i])
		if products[i].ClassificationID != nil {
			id := *products[i].ClassificationID
			byClassification[id] = append(byClassification[id], item)
		} else {
			unclassified = append(unclassified, item)
		}
	}

	groups := make([]ClassificationGroup, 0, len(classifications)+1)
	for i := range classifications {
		members, ok := byClassification[classifications[i].ID]
		if !ok {
			continue
		}
		resp := ToClassificationResponse(&classifications[i])
		groups = append(groups, ClassificationGroup{Classification: &resp, Products: members})
	}
	if len(unclassified) > 0 {
		groups = append(groups, ClassificationGroup{Products: unclassified})
	}
	return groups, nil
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	classificationRepo catalog.ClassificationRepository,
	storage ObjectStorage,
) *ProductService {
	return &ProductService{
		productRepo:        productRepo,
		classificationRepo: classificationRepo,
		storage:            storage,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price, ok := parseLenientDecimal(req.Price)
	if !ok {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a valid number")
	}

	product, err := catalog.NewProduct(req.Name, *price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.Category != "" {
		product.SetCategory(req.Category)
	}
	if discount, ok := parseLenientDecimal(req.DiscountPrice); ok {
		if err := product.SetDiscountPrice(discount); err != nil {
			return nil, err
		}
	}

	if req.ClassificationID != nil {
		if err := s.validateClassification(ctx, *req.ClassificationID); err != nil {
			return nil, err
		}
		product.SetClassification(req.ClassificationID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update updates an existing product. Numeric fields follow a lenient
// form contract: an unparseable price keeps the stored one, and an empty
// discount clears it.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	product.SetCategory(req.Category)

	if price, ok := parseLenientDecimal(req.Price); ok {
		if err := product.SetPrice(*price); err != nil {
			return nil, err
		}
	}
	if req.DiscountPrice == "" {
		if err := product.SetDiscountPrice(nil); err != nil {
			return nil, err
		}
	} else if discount, ok := parseLenientDecimal(req.DiscountPrice); ok {
		if err := product.SetDiscountPrice(discount); err != nil {
			return nil, err
		}
	}

	if req.ClassificationID != nil {
		if err := s.validateClassification(ctx, *req.ClassificationID); err != nil {
			return nil, err
		}
	}
	product.SetClassification(req.ClassificationID)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product, its variants and its stored images.
// Object storage failures are tolerated so a missing blob never blocks
// the catalog operation.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) ([]string, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orphaned := make([]string, 0)
	for _, img := range product.Images {
		if err := s.storage.DeleteByURL(ctx, img.URL); err != nil {
			orphaned = append(orphaned, img.URL)
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return orphaned, nil
}

// GetByID returns a product with its variants and images
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns all products, optionally filtered by a case-insensitive
// name search.
func (s *ProductService) List(ctx context.Context, search string) ([]ProductListResponse, error) {
	products, err := s.productRepo.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}

	result := make([]ProductListResponse, 0, len(products))
	for i := range products {
		result = append(result, ToProductListResponse(&products[i]))
	}
	return result, nil
}

func (s *ProductService) validateClassification(ctx context.Context, id uuid.UUID) error {
	_, err := s.classificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_CLASSIFICATION", "Classification not found")
		}
		return err
	}
	return nil
}
