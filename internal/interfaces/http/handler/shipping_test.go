package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	shippingapp "github.com/amconceito/storefront/internal/application/shipping"
	"github.com/amconceito/storefront/internal/domain/shared"
	"github.com/amconceito/storefront/internal/domain/shipping"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newShippingRouter(geocoder *MockGeocoder) *gin.Engine {
	service := shippingapp.NewService(geocoder, "65606-530")
	h := NewShippingHandler(service)

	router := gin.New()
	router.POST("/api/calculate-shipping", h.Calculate)
	return router
}

func postShipping(t *testing.T, router *gin.Engine, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate-shipping", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShippingCalculate_Pickup(t *testing.T) {
	geocoder := new(MockGeocoder)
	router := newShippingRouter(geocoder)

	w := postShipping(t, router, map[string]string{"cep": "", "method": "pickup"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp shippingapp.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Zero(t, resp.ShippingCost)
	assert.Zero(t, resp.DistanceKm)
	assert.Equal(t, "Retirada no ponto: Frete grátis", resp.Message)
	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestShippingCalculate_Delivery(t *testing.T) {
	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", mock.Anything, "65606530").
		Return(shipping.Coordinates{Lat: -23.5505, Lon: -46.6333}, nil)
	geocoder.On("Geocode", mock.Anything, "01310100").
		Return(shipping.Coordinates{Lat: -22.9068, Lon: -43.1729}, nil)

	router := newShippingRouter(geocoder)
	w := postShipping(t, router, map[string]string{"cep": "01310-100", "method": "delivery"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp shippingapp.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.InDelta(t, 360.75, resp.DistanceKm, 0.01)
	assert.InDelta(t, 64.19, resp.ShippingCost, 0.01)
	assert.Equal(t, "Chega entre 1 a 7 dias úteis.", resp.Message)
}

func TestShippingCalculate_WireShape(t *testing.T) {
	geocoder := new(MockGeocoder)
	router := newShippingRouter(geocoder)

	w := postShipping(t, router, map[string]string{"cep": "", "method": "pickup"})

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Len(t, raw, 4)
	for _, field := range []string{"success", "shipping_cost", "distance_km", "message"} {
		assert.Contains(t, raw, field)
	}
}

func TestShippingCalculate_InvalidCEP(t *testing.T) {
	geocoder := new(MockGeocoder)
	router := newShippingRouter(geocoder)

	w := postShipping(t, router, map[string]string{"cep": "123", "method": "delivery"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp shippingapp.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestShippingCalculate_CEPNotFound(t *testing.T) {
	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", mock.Anything, mock.Anything).
		Return(shipping.Coordinates{}, shared.ErrPostalCodeNotFound)

	router := newShippingRouter(geocoder)
	w := postShipping(t, router, map[string]string{"cep": "99999-999", "method": "delivery"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShippingCalculate_UpstreamFailure(t *testing.T) {
	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", mock.Anything, mock.Anything).
		Return(shipping.Coordinates{}, shared.ErrUpstream)

	router := newShippingRouter(geocoder)
	w := postShipping(t, router, map[string]string{"cep": "01310-100", "method": "delivery"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
