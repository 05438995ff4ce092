package identity

import "context"

// AdminRepository defines the persistence interface for the admin account
type AdminRepository interface {
	// FindByUsername returns the admin with the given username
	FindByUsername(ctx context.Context, username string) (*Admin, error)

	// Count returns the number of admin accounts
	Count(ctx context.Context) (int64, error)

	// Save persists an admin account
	Save(ctx context.Context, admin *Admin) error
}
