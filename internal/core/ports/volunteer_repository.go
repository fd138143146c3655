package ports

import (
	"context"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/volunteer"
)

// VolunteerRepository defines the persistence contract for volunteer profiles.
//
// Availability is the lock that keeps a volunteer on at most one active team,
// so it is never written blindly: Lock is a conditional (compare-and-set)
// update that only succeeds on an available volunteer, and Release is the
// unconditional inverse applied at donation completion.
type VolunteerRepository interface {
	// Add persists a new volunteer profile.
	Add(ctx context.Context, profile *volunteer.Profile) error

	// Update persists the profile's membership state. NGO memberships are
	// written as idempotent set unions; retried calls never duplicate rows.
	// The availability flag is not written here, only via Lock and Release.
	Update(ctx context.Context, profile *volunteer.Profile) error

	// Get retrieves a volunteer profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*volunteer.Profile, error)

	// GetByUserID retrieves the profile linked to a user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*volunteer.Profile, error)

	// GetByIDs retrieves the profiles for all given identifiers.
	// Returns an ObjectNotFoundError if any identifier is unknown.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*volunteer.Profile, error)

	// Lock flips the volunteer's availability from true to false.
	// Fails with a ResourceConflictError when the volunteer is already
	// locked, so two racing schedules cannot both take the same volunteer.
	Lock(ctx context.Context, id kernel.UUID) error

	// Release flips the volunteer's availability back to true,
	// unconditionally. Safe because a volunteer is on at most one active team.
	Release(ctx context.Context, id kernel.UUID) error
}
