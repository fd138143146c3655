package donationrepo

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDonationRepository implements DonationRepository using GORM.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDonationRepository creates a new GORM donation repository.
func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker) *GormDonationRepository {
	return &GormDonationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new donation with its items to the database.
func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the donation's mutable state as a conditional update on the
// status the aggregate was loaded with. Zero matched rows mean another caller
// transitioned the donation first; the write is rejected with a state
// conflict. Items and content fields are immutable after Add and are not
// written here. Proof images are appended idempotently.
func (r *GormDonationRepository) Update(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.LoadedStatus())).
		Updates(map[string]any{
			"status":          dto.Status,
			"assigned_ngo_id": dto.AssignedNgoID,
			"otp_code":        dto.OtpCode,
			"otp_expires_at":  dto.OtpExpiresAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError("donation", aggregate.LoadedStatus().String())
	}

	if len(dto.ProofImages) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.ProofImages).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a donation with its items and proof images by ID.
func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("ProofImages").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
