package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/amconceito/storefront/internal/domain/catalog"
	"github.com/amconceito/storefront/internal/domain/identity"
	"github.com/amconceito/storefront/internal/domain/shipping"
)

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByVariantID(ctx context.Context, variantID uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, search string) ([]catalog.Product, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

func (m *MockProductRepository) FindImageByID(ctx context.Context, imageID uuid.UUID) (*catalog.ProductImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductImage), args.Error(1)
}

func (m *MockProductRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *MockProductRepository) CountByClassification(ctx context.Context, classificationID uuid.UUID) (int64, error) {
	args := m.Called(ctx, classificationID)
	return args.Get(0).(int64), args.Error(1)
}

// MockClassificationRepository implements catalog.ClassificationRepository for testing
type MockClassificationRepository struct {
	mock.Mock
}

func (m *MockClassificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Classification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Classification), args.Error(1)
}

func (m *MockClassificationRepository) FindAll(ctx context.Context) ([]catalog.Classification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Classification), args.Error(1)
}

func (m *MockClassificationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockClassificationRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockClassificationRepository) Save(ctx context.Context, classification *catalog.Classification) error {
	args := m.Called(ctx, classification)
	return args.Error(0)
}

func (m *MockClassificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdminRepository implements identity.AdminRepository for testing
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*identity.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

// MockGeocoder implements shippingapp.Geocoder for testing
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, cep string) (shipping.Coordinates, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(shipping.Coordinates), args.Error(1)
}
