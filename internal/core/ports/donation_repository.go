// Package ports defines the persistence and collaborator contracts consumed
// by the application layer. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
)

// DonationRepository defines the persistence contract for donation aggregates.
type DonationRepository interface {
	// Add persists a new donation aggregate to storage.
	Add(ctx context.Context, aggregate *donation.Donation) error

	// Update persists changes to an existing donation aggregate as a
	// compare-and-set on the status the aggregate was loaded with: if another
	// caller transitioned the donation first, Update fails with a
	// StateConflictError and writes nothing. This makes every racing status
	// transition produce exactly one winner.
	Update(ctx context.Context, aggregate *donation.Donation) error

	// Get retrieves a donation aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such donation exists.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)
}
