package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amconceito/storefront/internal/domain/shared"
)

func TestStockService_AddVariant(t *testing.T) {
	ctx := context.Background()

	t.Run("adds variant and refreshes total stock", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := service.AddVariant(ctx, product.ID, AddVariantRequest{
			Size:     "M",
			Quantity: "5",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalStock)
		require.Len(t, resp.Variants, 1)
		assert.Equal(t, "M", resp.Variants[0].Size)
	})

	t.Run("unparseable quantity defaults to zero", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := service.AddVariant(ctx, product.ID, AddVariantRequest{
			Size:     "M",
			Quantity: "muitos",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalStock)
		assert.False(t, resp.Variants[0].IsAvailable)
	})

	t.Run("duplicate size is rejected", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		_, err := product.AddVariant("M", nil, 1, nil)
		require.NoError(t, err)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err = service.AddVariant(ctx, product.ID, AddVariantRequest{Size: "M", Quantity: "2"})

		assert.Error(t, err)
		productRepo.AssertNotCalled(t, "Save")
	})
}

func TestStockService_UpdateVariant(t *testing.T) {
	ctx := context.Background()

	t.Run("updates quantity and total stock", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		variant, err := product.AddVariant("M", nil, 5, nil)
		require.NoError(t, err)

		productRepo.On("FindByVariantID", ctx, variant.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := service.UpdateVariant(ctx, variant.ID, UpdateVariantRequest{
			VariantID:   variant.ID,
			Quantity:    "2",
			IsAvailable: true,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalStock)
		assert.Equal(t, 2, resp.Variants[0].Quantity)
	})

	t.Run("zero quantity forces unavailable", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		variant, err := product.AddVariant("M", nil, 5, nil)
		require.NoError(t, err)

		productRepo.On("FindByVariantID", ctx, variant.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := service.UpdateVariant(ctx, variant.ID, UpdateVariantRequest{
			VariantID:   variant.ID,
			Quantity:    "0",
			IsAvailable: true,
		})

		require.NoError(t, err)
		assert.False(t, resp.Variants[0].IsAvailable)
		assert.Equal(t, 0, resp.TotalStock)
	})

	t.Run("unparseable quantity keeps the stored one", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		variant, err := product.AddVariant("M", nil, 5, nil)
		require.NoError(t, err)

		productRepo.On("FindByVariantID", ctx, variant.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := service.UpdateVariant(ctx, variant.ID, UpdateVariantRequest{
			VariantID:   variant.ID,
			Quantity:    "cinco",
			IsAvailable: true,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.Variants[0].Quantity)
		assert.Equal(t, 5, resp.TotalStock)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewStockService(productRepo)

		product := newTestProduct(t, "Camiseta", 50)
		variant, err := product.AddVariant("M", nil, 5, nil)
		require.NoError(t, err)

		productRepo.On("FindByVariantID", ctx, variant.ID).Return(product, nil)

		_, err = service.UpdateVariant(ctx, variant.ID, UpdateVariantRequest{
			VariantID:   variant.ID,
			Quantity:    "-3",
			IsAvailable: true,
		})

		assert.ErrorIs(t, err, shared.ErrInvalidQuantity)
		productRepo.AssertNotCalled(t, "Save")
	})
}

func TestStockService_DeleteVariant(t *testing.T) {
	ctx := context.Background()

	productRepo := new(MockProductRepository)
	service := NewStockService(productRepo)

	product := newTestProduct(t, "Camiseta", 50)
	variant, err := product.AddVariant("M", nil, 5, nil)
	require.NoError(t, err)
	_, err = product.AddVariant("G", nil, 3, nil)
	require.NoError(t, err)

	productRepo.On("FindByVariantID", ctx, variant.ID).Return(product, nil)
	productRepo.On("DeleteVariant", ctx, variant.ID).Return(nil)
	productRepo.On("Save", ctx, product).Return(nil)

	resp, err := service.DeleteVariant(ctx, variant.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalStock)
	require.Len(t, resp.Variants, 1)
	assert.Equal(t, "G", resp.Variants[0].Size)
	productRepo.AssertExpectations(t)
}
