package catalog

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/amconceito/storefront/internal/domain/catalog"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
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

// MockClassificationRepository is a mock implementation of catalog.ClassificationRepository
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

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteByURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
