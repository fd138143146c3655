package ports

import (
	"context"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
)

// RequestRepository defines the persistence contract for donation claim requests.
type RequestRepository interface {
	// Add persists a new claim request.
	Add(ctx context.Context, request *donation.Request) error

	// Update persists changes to an existing claim request.
	Update(ctx context.Context, request *donation.Request) error

	// Get retrieves a claim request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*donation.Request, error)

	// GetPendingByDonation retrieves every Pending claim request for a
	// donation. Used by the approval sweep that rejects competitors.
	GetPendingByDonation(ctx context.Context, donationID kernel.UUID) ([]*donation.Request, error)
}
