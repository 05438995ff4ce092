package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and audit columns every persisted row
// of the store shares. IDs are application-generated UUIDs, so an
// aggregate can wire its child rows together before the first save.
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// NewBaseEntity mints a fresh identity with both timestamps set to now.
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
