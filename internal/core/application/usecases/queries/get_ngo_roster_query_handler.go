package queries

import (
	"context"

	"fooddonation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNgoRosterQueryHandler reads an NGO's volunteer roster from the database.
type GetNgoRosterQueryHandler struct {
	db *gorm.DB
}

// NewGetNgoRosterQueryHandler creates a handler for roster queries.
func NewGetNgoRosterQueryHandler(db *gorm.DB) GetNgoRosterQueryHandler {
	return GetNgoRosterQueryHandler{db: db}
}

// Handle executes the query.
// Returns every volunteer on the NGO's roster with their current availability,
// sorted by name.
func (h GetNgoRosterQueryHandler) Handle(
	ctx context.Context,
	query GetNgoRosterQuery,
) ([]GetNgoRosterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster := make([]GetNgoRosterQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.name,
			v.is_available
		FROM volunteers v
		JOIN ngo_volunteers nv ON nv.volunteer_id = v.id
		WHERE nv.ngo_id = ?
		ORDER BY v.name, v.id
	`, query.NgoID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNgoRosterQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.IsAvailable,
		)
		if err != nil {
			return nil, err
		}

		volunteerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.VolunteerID = volunteerID

		roster = append(roster, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
