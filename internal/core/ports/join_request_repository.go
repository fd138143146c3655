package ports

import (
	"context"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
)

// JoinRequestRepository defines the persistence contract for volunteer→NGO
// join requests.
type JoinRequestRepository interface {
	// Add persists a new join request.
	Add(ctx context.Context, request *ngo.JoinRequest) error

	// Update persists changes to an existing join request.
	Update(ctx context.Context, request *ngo.JoinRequest) error

	// Get retrieves a join request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ngo.JoinRequest, error)

	// HasActive reports whether a Pending or Accepted request already exists
	// for the (ngo, volunteer) pair. Used to reject duplicate join requests.
	HasActive(ctx context.Context, ngoID, volunteerID kernel.UUID) (bool, error)
}
