package requestrepo

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM claim request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new claim request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, request *donation.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Update saves an existing claim request to the database.
func (r *GormRequestRepository) Update(ctx context.Context, request *donation.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Get retrieves a claim request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("claim request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByDonation retrieves every Pending claim request for a donation.
func (r *GormRequestRepository) GetPendingByDonation(
	ctx context.Context,
	donationID kernel.UUID,
) ([]*donation.Request, error) {
	if err := donationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "donation_id = ? AND status = ?", donationID.Bytes(), int(donation.RequestStatusPending)).
		Error
	if err != nil {
		return nil, err
	}

	requests := make([]*donation.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, reqErr := toDomain(dto)
		if reqErr != nil {
			return nil, reqErr
		}
		requests = append(requests, request)
	}

	return requests, nil
}
