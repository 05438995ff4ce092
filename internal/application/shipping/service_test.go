package shipping

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/amconceito/storefront/internal/domain/shipping"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, cep string) (shipping.Coordinates, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(shipping.Coordinates), args.Error(1)
}

func TestService_Estimate(t *testing.T) {
	ctx := context.Background()

	t.Run("pickup is free and skips geocoding", func(t *testing.T) {
		geocoder := new(MockGeocoder)
		service := NewService(geocoder, "65606-530")

		resp, err := service.Estimate(ctx, EstimateRequest{Method: MethodPickup})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 0.0, resp.ShippingCost)
		assert.Equal(t, 0.0, resp.DistanceKm)
		assert.Equal(t, "Retirada no ponto: Frete grátis", resp.Message)
		geocoder.AssertNotCalled(t, "Geocode")
	})

	t.Run("delivery quotes distance cost from the pickup point", func(t *testing.T) {
		geocoder := new(MockGeocoder)
		service := NewService(geocoder, "65606-530")

		saoPaulo := shipping.Coordinates{Lat: -23.5505, Lon: -46.6333}
		rio := shipping.Coordinates{Lat: -22.9068, Lon: -43.1729}
		geocoder.On("Geocode", ctx, "65606530").Return(saoPaulo, nil)
		geocoder.On("Geocode", ctx, "01310100").Return(rio, nil)

		resp, err := service.Estimate(ctx, EstimateRequest{CEP: "01310-100", Method: "delivery"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 360.75, resp.DistanceKm)
		assert.Equal(t, 64.19, resp.ShippingCost)
		assert.Equal(t, "Chega entre 1 a 7 dias úteis.", resp.Message)
	})

	t.Run("rejects malformed CEP", func(t *testing.T) {
		geocoder := new(MockGeocoder)
		service := NewService(geocoder, "65606-530")

		_, err := service.Estimate(ctx, EstimateRequest{CEP: "1234", Method: "delivery"})

		assert.ErrorIs(t, err, shared.ErrInvalidPostalCode)
		geocoder.AssertNotCalled(t, "Geocode")
	})

	t.Run("unknown customer CEP reports not found before the pickup point resolves", func(t *testing.T) {
		geocoder := new(MockGeocoder)
		service := NewService(geocoder, "65606-530")

		geocoder.On("Geocode", ctx, "99999999").Return(shipping.Coordinates{}, shared.ErrPostalCodeNotFound)

		_, err := service.Estimate(ctx, EstimateRequest{CEP: "99999-999", Method: "delivery"})

		assert.ErrorIs(t, err, shared.ErrPostalCodeNotFound)
		geocoder.AssertNotCalled(t, "Geocode", ctx, "65606530")
	})

	t.Run("unresolvable pickup point is an upstream failure", func(t *testing.T) {
		geocoder := new(MockGeocoder)
		service := NewService(geocoder, "65606-530")

		geocoder.On("Geocode", ctx, "01310100").Return(shipping.Coordinates{Lat: -23.5505, Lon: -46.6333}, nil)
		geocoder.On("Geocode", ctx, "65606530").Return(shipping.Coordinates{}, shared.ErrPostalCodeNotFound)

		_, err := service.Estimate(ctx, EstimateRequest{CEP: "01310-100", Method: "delivery"})

		assert.ErrorIs(t, err, shared.ErrUpstream)
	})

	t.Run("propagates upstream failures", func(t *testing.T) {
		geocoder := new(MockGeocoder)
		service := NewService(geocoder, "65606-530")

		geocoder.On("Geocode", ctx, "01310100").Return(shipping.Coordinates{}, shared.ErrUpstream)

		_, err := service.Estimate(ctx, EstimateRequest{CEP: "01310-100", Method: "delivery"})

		assert.ErrorIs(t, err, shared.ErrUpstream)
	})
}

func TestNormalizeCEP(t *testing.T) {
	assert.Equal(t, "65606530", NormalizeCEP("65606-530"))
	assert.Equal(t, "65606530", NormalizeCEP(" 65.606-530 "))
	assert.Equal(t, "", NormalizeCEP("abc"))
}
