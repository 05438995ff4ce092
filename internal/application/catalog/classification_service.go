package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amconceito/storefront/internal/domain/catalog"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// ClassificationService handles storefront classification management
type ClassificationService struct {
	classificationRepo catalog.ClassificationRepository
	productRepo        catalog.ProductRepository
}

// NewClassificationService creates a new ClassificationService
func NewClassificationService(
	classificationRepo catalog.ClassificationRepository,
	productRepo catalog.ProductRepository,
) *ClassificationService {
	return &ClassificationService{
		classificationRepo: classificationRepo,
		productRepo:        productRepo,
	}
}

// Create creates a new classification at the end of the display order
func (s *ClassificationService) Create(ctx context.Context, req CreateClassificationRequest) (*ClassificationResponse, error) {
	exists, err := s.classificationRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A classification with this name already exists")
	}

	maxOrder, err := s.classificationRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}

	classification, err := catalog.NewClassification(req.Name, maxOrder+1)
	if err != nil {
		return nil, err
	}

	if err := s.classificationRepo.Save(ctx, classification); err != nil {
		return nil, err
	}

	resp := ToClassificationResponse(classification)
	return &resp, nil
}

// Delete removes a classification. Classifications still referenced by
// products cannot be deleted.
func (s *ClassificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.classificationRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByClassification(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("HAS_DEPENDENT_PRODUCTS", "Classification is still assigned to products")
	}

	return s.classificationRepo.Delete(ctx, id)
}

// List returns all classifications ordered for display
func (s *ClassificationService) List(ctx context.Context) ([]ClassificationResponse, error) {
	classifications, err := s.classificationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ClassificationResponse, 0, len(classifications))
	for i := range classifications {
		result = append(result, ToClassificationResponse(&classifications[i]))
	}
	return result, nil
}

// Reorder applies new display orders from raw form values. Entries with
// an unknown ID or an unparseable order are skipped rather than failing
// the whole submission.
func (s *ClassificationService) Reorder(ctx context.Context, req ReorderClassificationsRequest) error {
	for rawID, rawOrder := range req.Orders {
		id, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		order, ok := parseLenientInt(rawOrder)
		if !ok {
			continue
		}

		classification, err := s.classificationRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}
		classification.SetDisplayOrder(order)
		if err := s.classificationRepo.Save(ctx, classification); err != nil {
			return err
		}
	}
	return nil
}
