package catalog

import (
	"strings"
	"time"

	"github.com/amconceito/storefront/internal/domain/shared"
)

// Classification is an admin-defined grouping of products for display,
// with a manual sort order. Names are unique; DisplayOrder is not, new
// classifications append at the end (max order + 1).
type Classification struct {
	shared.BaseAggregateRoot
	Name         string `gorm:"type:varchar(150);not null;uniqueIndex"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Classification) TableName() string {
	return "classifications"
}

// NewClassification creates a new classification at the given display order
func NewClassification(name string, displayOrder int) (*Classification, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("MISSING_REQUIRED_FIELD", "Classification name is required")
	}
	if len(name) > 150 {
		return nil, shared.NewDomainError("INVALID_NAME", "Classification name cannot exceed 150 characters")
	}

	return &Classification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		DisplayOrder:      displayOrder,
	}, nil
}

// SetDisplayOrder sets the manual sort position
func (c *Classification) SetDisplayOrder(order int) {
	c.DisplayOrder = order
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
