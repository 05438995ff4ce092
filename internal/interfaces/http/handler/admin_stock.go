package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/amconceito/storefront/internal/application/catalog"
)

// AdminStockHandler serves the admin stock variant endpoints
type AdminStockHandler struct {
	BaseHandler
	stockService *catalogapp.StockService
}

// NewAdminStockHandler creates a new AdminStockHandler
func NewAdminStockHandler(stockService *catalogapp.StockService) *AdminStockHandler {
	return &AdminStockHandler{stockService: stockService}
}

// AddVariant adds a size/color variant to a product
func (h *AdminStockHandler) AddVariant(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	req := catalogapp.AddVariantRequest{
		Size:     c.PostForm("size"),
		Color:    c.PostForm("color"),
		Quantity: c.PostForm("quantity"),
		Price:    c.PostForm("price"),
	}
	if req.Size == "" {
		h.BadRequest(c, "Size is required")
		return
	}

	product, err := h.stockService.AddVariant(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// EditStock updates one variant's quantity, price and availability.
// Unparseable quantity or price values keep the stored ones.
func (h *AdminStockHandler) EditStock(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	req := catalogapp.UpdateVariantRequest{
		VariantID:   variantID,
		Quantity:    c.PostForm("quantity"),
		Price:       c.PostForm("price"),
		IsAvailable: c.PostForm("is_available") == "on" || c.PostForm("is_available") == "true",
	}

	product, err := h.stockService.UpdateVariant(c.Request.Context(), variantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// DeleteVariant removes a variant from its product
func (h *AdminStockHandler) DeleteVariant(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	product, err := h.stockService.DeleteVariant(c.Request.Context(), variantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}
