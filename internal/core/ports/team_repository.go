package ports

import (
	"context"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
)

// TeamRepository defines the persistence contract for pickup teams.
// A donation has at most one team; Add enforces that via the unique
// donation reference.
type TeamRepository interface {
	// Add persists a newly formed team.
	Add(ctx context.Context, team *donation.Team) error

	// GetByDonation retrieves the team formed for a donation.
	// Returns an ObjectNotFoundError if none exists.
	GetByDonation(ctx context.Context, donationID kernel.UUID) (*donation.Team, error)
}
