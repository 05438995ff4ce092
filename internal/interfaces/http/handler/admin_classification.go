package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/amconceito/storefront/internal/application/catalog"
)

// AdminClassificationHandler serves the admin classification endpoints
type AdminClassificationHandler struct {
	BaseHandler
	classificationService *catalogapp.ClassificationService
}

// NewAdminClassificationHandler creates a new AdminClassificationHandler
func NewAdminClassificationHandler(classificationService *catalogapp.ClassificationService) *AdminClassificationHandler {
	return &AdminClassificationHandler{classificationService: classificationService}
}

// Create adds a classification at the end of the display order
func (h *AdminClassificationHandler) Create(c *gin.Context) {
	req := catalogapp.CreateClassificationRequest{
		Name: c.PostForm("name"),
	}
	if req.Name == "" {
		h.BadRequest(c, "Classification name is required")
		return
	}

	classification, err := h.classificationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, classification)
}

// Delete removes a classification that no product references
func (h *AdminClassificationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid classification ID")
		return
	}

	if err := h.classificationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"deleted": id})
}

// Reorder applies new display order values. The body maps
// classification IDs to order numbers; unknown IDs and unparseable
// values are skipped.
func (h *AdminClassificationHandler) Reorder(c *gin.Context) {
	var req catalogapp.ReorderClassificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid reorder payload")
		return
	}

	if err := h.classificationService.Reorder(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	classifications, err := h.classificationService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, classifications)
}
