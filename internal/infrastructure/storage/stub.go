package storage

import (
	"context"
	"errors"
	"io"
	"sync"

	catalogapp "github.com/amconceito/storefront/internal/application/catalog"
)

// Ensure StubObjectStorage implements the catalog storage port
var _ catalogapp.ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory stand-in for development and tests
// when no S3 backend is configured. Objects are held in a map.
type StubObjectStorage struct {
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com/product-images",
		objects: make(map[string][]byte),
	}
}

// Upload retains the object in memory and returns a fake public URL
func (s *StubObjectStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return s.BaseURL + "/" + key, nil
}

// DeleteByURL forgets the object behind a previously returned URL
func (s *StubObjectStorage) DeleteByURL(ctx context.Context, objectURL string) error {
	prefix := s.BaseURL + "/"
	if len(objectURL) <= len(prefix) || objectURL[:len(prefix)] != prefix {
		return errors.New("url is not under the storage base")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectURL[len(prefix):])
	return nil
}

// Len reports how many objects are held, for tests
func (s *StubObjectStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
