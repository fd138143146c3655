package queries

import (
	"context"

	"fooddonation/internal/core/domain/model/donation"

	"gorm.io/gorm"
)

// GetDonationStatsQueryHandler reads donation counts per status from the database.
type GetDonationStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDonationStatsQueryHandler creates a handler for donation stats queries.
func NewGetDonationStatsQueryHandler(db *gorm.DB) GetDonationStatsQueryHandler {
	return GetDonationStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDonationStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDonationStatsQuery,
) ([]GetDonationStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetDonationStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM donations
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		stats = append(stats, GetDonationStatsQueryResponse{
			Status: donation.Status(status).String(),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
