package queries

import (
	"errors"

	"fooddonation/internal/pkg/guard"
)

var (
	ErrGetDonationStatsQueryIsNotConstructed = errors.New(
		"GetDonationStatsQuery must be created via NewGetDonationStatsQuery constructor",
	)
)

// GetDonationStatsQuery retrieves donation counts grouped by workflow status.
// Used by the operational report job; nothing in the workflow depends on it.
type GetDonationStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDonationStatsQuery creates a query for donation status counts.
func NewGetDonationStatsQuery() GetDonationStatsQuery {
	return GetDonationStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDonationStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDonationStatsQueryIsNotConstructed)
}

// GetDonationStatsQueryResponse is the donation count for one status.
type GetDonationStatsQueryResponse struct {
	Status string
	Count  int
}
