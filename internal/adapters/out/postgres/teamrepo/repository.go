package teamrepo

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTeamRepository implements TeamRepository using GORM.
type GormTeamRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTeamRepository creates a new GORM team repository.
func NewGormTeamRepository(db *gorm.DB, tracker aggregateTracker) *GormTeamRepository {
	return &GormTeamRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly formed team with its members to the database.
// The unique index on donation_id rejects a second team for the same donation.
func (r *GormTeamRepository) Add(ctx context.Context, team *donation.Team) error {
	if err := team.Validate(); err != nil {
		return err
	}

	dto := fromDomain(team)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(team.ID(), team)
	return nil
}

// GetByDonation retrieves the team formed for a donation.
func (r *GormTeamRepository) GetByDonation(
	ctx context.Context,
	donationID kernel.UUID,
) (*donation.Team, error) {
	if err := donationID.Validate(); err != nil {
		return nil, err
	}

	var dto TeamDTO
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&dto, "donation_id = ?", donationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("team for donation", donationID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
