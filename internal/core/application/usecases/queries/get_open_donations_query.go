// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrGetOpenDonationsQueryIsNotConstructed = errors.New(
		"GetOpenDonationsQuery must be created via NewGetOpenDonationsQuery constructor",
	)
)

// GetOpenDonationsQuery retrieves every donation still open for claims.
// NGOs browse this listing to find donations worth requesting.
type GetOpenDonationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenDonationsQuery creates a query for the open donation listing.
func NewGetOpenDonationsQuery() GetOpenDonationsQuery {
	return GetOpenDonationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenDonationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenDonationsQueryIsNotConstructed)
}

// GetOpenDonationsQueryResponse is one open donation in the listing.
type GetOpenDonationsQueryResponse struct {
	ID            kernel.UUID
	Title         string
	PeopleFed     int
	PickupAddress string
	PickupPoint   kernel.GeoPoint
}
