package ports

import (
	"context"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
)

// NgoRepository defines the persistence contract for NGO profiles.
type NgoRepository interface {
	// Add persists a new NGO profile.
	Add(ctx context.Context, profile *ngo.Profile) error

	// Update persists the profile's roster and handled-donation state.
	// Both sets are written as idempotent set unions.
	Update(ctx context.Context, profile *ngo.Profile) error

	// Get retrieves an NGO profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ngo.Profile, error)

	// GetByUserID retrieves the profile linked to a user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*ngo.Profile, error)
}
