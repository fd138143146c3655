package queries

import (
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrGetNgoRosterQueryIsNotConstructed = errors.New(
		"GetNgoRosterQuery must be created via NewGetNgoRosterQuery constructor",
	)
)

// GetNgoRosterQuery retrieves an NGO's volunteer roster with availability,
// the listing an NGO works from when forming a pickup team.
type GetNgoRosterQuery struct { //nolint:recvcheck //using for validation
	ngoID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNgoRosterQuery creates a query for an NGO's volunteer roster.
func NewGetNgoRosterQuery(ngoID kernel.UUID) (GetNgoRosterQuery, error) {
	q := GetNgoRosterQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setNgoID(ngoID); err != nil {
		return GetNgoRosterQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNgoRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetNgoRosterQueryIsNotConstructed)
}

// NgoID returns the NGO whose roster is requested.
func (q GetNgoRosterQuery) NgoID() kernel.UUID {
	return q.ngoID
}

func (q *GetNgoRosterQuery) setNgoID(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}

	q.ngoID = ngoID
	return nil
}

// GetNgoRosterQueryResponse is one volunteer on the roster.
type GetNgoRosterQueryResponse struct {
	VolunteerID kernel.UUID
	Name        string
	IsAvailable bool
}
