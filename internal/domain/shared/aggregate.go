package shared

// BaseAggregateRoot extends BaseEntity with a version counter.
// Version is incremented on every mutation; it is carried for optimistic
// locking but not yet enforced as a WHERE guard on save.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// IncrementVersion bumps the version counter
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot mints an aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
