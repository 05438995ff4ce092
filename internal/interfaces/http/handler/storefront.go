package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/amconceito/storefront/internal/application/catalog"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// StorefrontHandler serves the public catalog endpoints
type StorefrontHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(productService *catalogapp.ProductService) *StorefrontHandler {
	return &StorefrontHandler{productService: productService}
}

// Home lists the catalog grouped by classification. The optional q
// query parameter filters by product name.
func (h *StorefrontHandler) Home(c *gin.Context) {
	search := c.Query("q")

	groups, err := h.productService.ListGrouped(c.Request.Context(), search)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"groups": groups,
		"search": search,
	})
}

// ProductDetail returns a single product. Unknown or malformed IDs
// redirect back to the storefront instead of rendering an error page.
func (h *StorefrontHandler) ProductDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Cart serves the client-side cart page descriptor. The cart itself
// lives in the browser; the server only names the page.
func (h *StorefrontHandler) Cart(c *gin.Context) {
	h.Success(c, gin.H{"page": "cart"})
}

// Checkout serves the checkout page descriptor
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	h.Success(c, gin.H{"page": "checkout"})
}
