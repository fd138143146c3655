package ngorepo

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNgoRepository implements NgoRepository using GORM.
type GormNgoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNgoRepository creates a new GORM NGO repository.
func NewGormNgoRepository(db *gorm.DB, tracker aggregateTracker) *GormNgoRepository {
	return &GormNgoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new NGO profile to the database.
func (r *GormNgoRepository) Add(ctx context.Context, profile *ngo.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Update persists the profile's roster and handled-donation sets. Both are
// written as inserts that do nothing on conflict, so a retried update never
// duplicates a row.
func (r *GormNgoRepository) Update(ctx context.Context, profile *ngo.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)

	result := r.db.WithContext(ctx).Model(&NgoDTO{}).
		Where("id = ?", dto.ID).
		Update("organization_name", dto.OrganizationName)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Volunteers) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Volunteers).Error
		if err != nil {
			return err
		}
	}

	if len(dto.Donations) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Donations).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Get retrieves an NGO profile by ID.
func (r *GormNgoRepository) Get(ctx context.Context, id kernel.UUID) (*ngo.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NgoDTO
	err := r.db.WithContext(ctx).
		Preload("Volunteers").
		Preload("Donations").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ngo", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the profile linked to a user account.
func (r *GormNgoRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*ngo.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto NgoDTO
	err := r.db.WithContext(ctx).
		Preload("Volunteers").
		Preload("Donations").
		First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ngo for user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
