package joinrequestrepo

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJoinRequestRepository implements JoinRequestRepository using GORM.
type GormJoinRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJoinRequestRepository creates a new GORM join request repository.
func NewGormJoinRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormJoinRequestRepository {
	return &GormJoinRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new join request to the database.
func (r *GormJoinRequestRepository) Add(ctx context.Context, request *ngo.JoinRequest) error {
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

// Update saves an existing join request to the database.
func (r *GormJoinRequestRepository) Update(ctx context.Context, request *ngo.JoinRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&JoinRequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

// Get retrieves a join request by ID.
func (r *GormJoinRequestRepository) Get(ctx context.Context, id kernel.UUID) (*ngo.JoinRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JoinRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("join request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasActive reports whether a Pending or Accepted request already exists for
// the (ngo, volunteer) pair.
func (r *GormJoinRequestRepository) HasActive(
	ctx context.Context,
	ngoID, volunteerID kernel.UUID,
) (bool, error) {
	if err := ngoID.Validate(); err != nil {
		return false, err
	}
	if err := volunteerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&JoinRequestDTO{}).
		Where("ngo_id = ? AND volunteer_id = ? AND status IN ?",
			ngoID.Bytes(), volunteerID.Bytes(),
			[]int{int(ngo.JoinRequestStatusPending), int(ngo.JoinRequestStatusAccepted)}).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
