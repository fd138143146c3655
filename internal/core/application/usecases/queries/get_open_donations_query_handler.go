package queries

import (
	"context"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenDonationsQueryHandler reads the open donation listing from the database.
type GetOpenDonationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenDonationsQueryHandler creates a handler for open donation queries.
func NewGetOpenDonationsQueryHandler(db *gorm.DB) GetOpenDonationsQueryHandler {
	return GetOpenDonationsQueryHandler{db: db}
}

// Handle executes the query.
// Returns donations still in the "new" status, sorted by ID for stable paging.
func (h GetOpenDonationsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenDonationsQuery,
) ([]GetOpenDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	donations := make([]GetOpenDonationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			people_fed,
			pickup_address,
			pickup_longitude,
			pickup_latitude
		FROM donations
		WHERE status = ?
		ORDER BY id
	`, int(donation.StatusNew)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenDonationsQueryResponse
		var id uuid.UUID
		var longitude, latitude float64

		err = rows.Scan(
			&id,
			&resp.Title,
			&resp.PeopleFed,
			&resp.PickupAddress,
			&longitude,
			&latitude,
		)
		if err != nil {
			return nil, err
		}

		donationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = donationID

		point, pointErr := kernel.NewGeoPoint(longitude, latitude)
		if pointErr != nil {
			return nil, pointErr
		}
		resp.PickupPoint = point

		donations = append(donations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
