package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	shippingapp "github.com/amconceito/storefront/internal/application/shipping"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// ShippingHandler serves the checkout shipping estimate endpoint
type ShippingHandler struct {
	service *shippingapp.Service
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(service *shippingapp.Service) *ShippingHandler {
	return &ShippingHandler{service: service}
}

// Calculate estimates shipping for a destination CEP. The response body
// always carries the four fields the checkout page reads, on failure
// with success=false and the reason in message.
func (h *ShippingHandler) Calculate(c *gin.Context) {
	var req shippingapp.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, shippingapp.EstimateResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	resp, err := h.service.Estimate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, shared.ErrInvalidPostalCode):
			status = http.StatusBadRequest
		case errors.Is(err, shared.ErrPostalCodeNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, shippingapp.EstimateResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
