package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amconceito/storefront/internal/domain/catalog"
	"github.com/amconceito/storefront/internal/domain/shared"
)

// ObjectStorage abstracts the blob store holding product images
type ObjectStorage interface {
	// Upload stores an object and returns its public URL
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// DeleteByURL removes the object a previously returned URL points to
	DeleteByURL(ctx context.Context, url string) error
}

// ImageUpload is one file submitted through the admin form
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ImageService handles product image uploads and removal
type ImageService struct {
	productRepo catalog.ProductRepository
	storage     ObjectStorage
	now         func() time.Time
}

// NewImageService creates a new ImageService
func NewImageService(productRepo catalog.ProductRepository, storage ObjectStorage) *ImageService {
	return &ImageService{
		productRepo: productRepo,
		storage:     storage,
		now:         time.Now,
	}
}

// AddImages uploads the given files and attaches them to the product.
// Files are numbered within the batch so two uploads in the same second
// never collide.
func (s *ImageService) AddImages(ctx context.Context, productID uuid.UUID, uploads []ImageUpload) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	timestamp := s.now().Unix()
	for i, upload := range uploads {
		key := ImageObjectKey(product.Name, upload.Filename, timestamp, i)
		url, err := s.storage.Upload(ctx, key, upload.ContentType, upload.Body)
		if err != nil {
			return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to store product image")
		}
		if _, err := product.AddImage(url); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// RemoveImage detaches an image from its product and deletes the stored
// object. A storage failure does not abort the removal; the URL is
// reported back so the operator can clean up manually.
func (s *ImageService) RemoveImage(ctx context.Context, productID, imageID uuid.UUID) (orphanedURL string, err error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return "", err
	}

	var url string
	for _, img := range product.Images {
		if img.ID == imageID {
			url = img.URL
			break
		}
	}
	if url == "" {
		return "", shared.NewDomainError("NOT_FOUND", "Image not found")
	}

	if err := product.RemoveImage(imageID); err != nil {
		return "", err
	}
	if err := s.productRepo.DeleteImage(ctx, imageID); err != nil {
		return "", err
	}

	if err := s.storage.DeleteByURL(ctx, url); err != nil {
		return url, nil
	}
	return "", nil
}

var nonWord = regexp.MustCompile(`[^a-z0-9 _-]+`)
var spacesAndHyphens = regexp.MustCompile(`[ -]+`)

// ImageObjectKey builds the storage key for a product image:
// products/{slug}_{timestamp}_{nn}{ext}. The slug is derived from the
// product name, lowercased, stripped of punctuation and capped at 30
// characters. Files with no usable extension default to .jpg.
func ImageObjectKey(productName, filename string, timestamp int64, index int) string {
	slug := strings.ToLower(strings.TrimSpace(productName))
	slug = nonWord.ReplaceAllString(slug, "")
	slug = spacesAndHyphens.ReplaceAllString(slug, "_")
	if slug == "" {
		slug = "produto"
	}
	if len(slug) > 30 {
		slug = slug[:30]
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	return fmt.Sprintf("products/%s_%d_%02d%s", slug, timestamp, index, ext)
}
