package handler

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogapp "github.com/amconceito/storefront/internal/application/catalog"
)

// AdminProductHandler serves the admin product management endpoints.
// The admin panel posts multipart forms, so requests are read field by
// field rather than bound to a struct.
type AdminProductHandler struct {
	BaseHandler
	productService        *catalogapp.ProductService
	imageService          *catalogapp.ImageService
	classificationService *catalogapp.ClassificationService
	logger                *zap.Logger
}

// NewAdminProductHandler creates a new AdminProductHandler
func NewAdminProductHandler(
	productService *catalogapp.ProductService,
	imageService *catalogapp.ImageService,
	classificationService *catalogapp.ClassificationService,
	logger *zap.Logger,
) *AdminProductHandler {
	return &AdminProductHandler{
		productService:        productService,
		imageService:          imageService,
		classificationService: classificationService,
		logger:                logger,
	}
}

// Home lists all products and classifications for the admin panel
func (h *AdminProductHandler) Home(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	classifications, err := h.classificationService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"products":        products,
		"classifications": classifications,
	})
}

// Create adds a product from the admin form, uploading any attached
// images after the product row exists.
func (h *AdminProductHandler) Create(c *gin.Context) {
	req := catalogapp.CreateProductRequest{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		Price:         c.PostForm("price"),
		DiscountPrice: c.PostForm("discount_price"),
		Category:      c.PostForm("category"),
	}
	if req.Name == "" {
		h.BadRequest(c, "Product name is required")
		return
	}
	if classID, ok := parseOptionalUUID(c.PostForm("classification_id")); ok {
		req.ClassificationID = classID
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	product, err = h.uploadFormImages(c, product)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// Update edits a product from the admin form
func (h *AdminProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	req := catalogapp.UpdateProductRequest{
		Name:          c.PostForm("name"),
		Description:   c.PostForm("description"),
		Price:         c.PostForm("price"),
		DiscountPrice: c.PostForm("discount_price"),
		Category:      c.PostForm("category"),
	}
	if req.Name == "" {
		h.BadRequest(c, "Product name is required")
		return
	}
	if classID, ok := parseOptionalUUID(c.PostForm("classification_id")); ok {
		req.ClassificationID = classID
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	product, err = h.uploadFormImages(c, product)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product. Blob deletions are best-effort; URLs that
// could not be removed from storage are logged for manual cleanup.
func (h *AdminProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	orphaned, err := h.productService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if len(orphaned) > 0 {
		h.logger.Warn("orphaned product images left in storage",
			zap.String("product_id", id.String()),
			zap.Strings("urls", orphaned),
		)
	}

	h.Success(c, gin.H{"deleted": id})
}

// RemoveImage detaches one image from a product
func (h *AdminProductHandler) RemoveImage(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	imageID, err := uuid.Parse(c.PostForm("image_id"))
	if err != nil {
		h.BadRequest(c, "Invalid image ID")
		return
	}

	orphanedURL, err := h.imageService.RemoveImage(c.Request.Context(), productID, imageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if orphanedURL != "" {
		h.logger.Warn("orphaned product image left in storage",
			zap.String("product_id", productID.String()),
			zap.String("url", orphanedURL),
		)
	}

	h.Success(c, gin.H{"removed": imageID})
}

// uploadFormImages stores the images[] files attached to the admin form
// and returns the refreshed product. Requests without a multipart body
// are passed through untouched.
func (h *AdminProductHandler) uploadFormImages(c *gin.Context, product *catalogapp.ProductResponse) (*catalogapp.ProductResponse, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return product, nil
	}

	files := form.File["images[]"]
	if len(files) == 0 {
		files = form.File["images"]
	}
	if len(files) == 0 {
		return product, nil
	}

	uploads := make([]catalogapp.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return product, err
		}
		opened = append(opened, src)
		uploads = append(uploads, catalogapp.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        src,
		})
	}

	return h.imageService.AddImages(c.Request.Context(), product.ID, uploads)
}

// parseOptionalUUID parses a form value into a UUID pointer. Empty
// values report ok with a nil pointer so the caller can clear the
// association; malformed values are ignored.
func parseOptionalUUID(raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}
