package volunteerrepo

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/volunteer"
	"fooddonation/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVolunteerRepository implements VolunteerRepository using GORM.
type GormVolunteerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVolunteerRepository creates a new GORM volunteer repository.
func NewGormVolunteerRepository(db *gorm.DB, tracker aggregateTracker) *GormVolunteerRepository {
	return &GormVolunteerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new volunteer profile to the database.
func (r *GormVolunteerRepository) Add(ctx context.Context, profile *volunteer.Profile) error {
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

// Update persists the profile's name and NGO memberships. Memberships are
// written as inserts that do nothing on conflict, so a retried update never
// duplicates a row. The availability flag is owned by Lock and Release and is
// not written here.
func (r *GormVolunteerRepository) Update(ctx context.Context, profile *volunteer.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)

	result := r.db.WithContext(ctx).Model(&VolunteerDTO{}).
		Where("id = ?", dto.ID).
		Update("name", dto.Name)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.NGOs) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.NGOs).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Get retrieves a volunteer profile by ID.
func (r *GormVolunteerRepository) Get(ctx context.Context, id kernel.UUID) (*volunteer.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VolunteerDTO
	err := r.db.WithContext(ctx).Preload("NGOs").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volunteer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the profile linked to a user account.
func (r *GormVolunteerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*volunteer.Profile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto VolunteerDTO
	err := r.db.WithContext(ctx).Preload("NGOs").First(&dto, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volunteer for user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the profiles for all given identifiers.
// Any unknown identifier makes the whole read fail.
func (r *GormVolunteerRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*volunteer.Profile, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []VolunteerDTO
	if err := r.db.WithContext(ctx).Preload("NGOs").Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[kernel.UUID]*volunteer.Profile, len(dtos))
	for _, dto := range dtos {
		profile, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[profile.ID()] = profile
	}

	profiles := make([]*volunteer.Profile, 0, len(ids))
	for _, id := range ids {
		profile, ok := found[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("volunteer", id.String())
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Lock flips the volunteer's availability from true to false. The condition
// on the current value means two concurrent locks can only succeed once; the
// loser matches zero rows and gets a resource conflict.
func (r *GormVolunteerRepository) Lock(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&VolunteerDTO{}).
		Where("id = ? AND is_available = ?", id.Bytes(), true).
		Update("is_available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("volunteer", id.String())
	}

	return nil
}

// Release marks the volunteer available again. The write is unconditional so
// a retried release stays a no-op.
func (r *GormVolunteerRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&VolunteerDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_available", true).Error
}
