// Package volunteerrepo persists volunteer profiles and their NGO memberships.
package volunteerrepo

import (
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/volunteer"

	"github.com/google/uuid"
)

// VolunteerDTO represents the database structure for volunteer profiles.
type VolunteerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name        string
	IsAvailable bool

	NGOs []VolunteerNgoDTO `gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for volunteer profiles.
func (VolunteerDTO) TableName() string {
	return "volunteers"
}

// VolunteerNgoDTO is the volunteer's side of an NGO membership. The composite
// key makes re-inserting a membership a no-op.
type VolunteerNgoDTO struct {
	VolunteerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	NgoID       uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for volunteer memberships.
func (VolunteerNgoDTO) TableName() string {
	return "volunteer_ngos"
}

func fromDomain(profile *volunteer.Profile) VolunteerDTO {
	volunteerID := profile.ID().Bytes()

	ngos := make([]VolunteerNgoDTO, 0, len(profile.JoinedNGOs()))
	for _, ngoID := range profile.JoinedNGOs() {
		ngos = append(ngos, VolunteerNgoDTO{
			VolunteerID: volunteerID,
			NgoID:       ngoID.Bytes(),
		})
	}

	return VolunteerDTO{
		ID:          volunteerID,
		UserID:      profile.UserID().Bytes(),
		Name:        profile.Name(),
		IsAvailable: profile.IsAvailable(),
		NGOs:        ngos,
	}
}

func toDomain(dto VolunteerDTO) (*volunteer.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	joinedNGOs := make([]kernel.UUID, 0, len(dto.NGOs))
	for _, membership := range dto.NGOs {
		ngoID, ngoErr := kernel.UUIDFromBytes(membership.NgoID[:])
		if ngoErr != nil {
			return nil, ngoErr
		}
		joinedNGOs = append(joinedNGOs, ngoID)
	}

	return volunteer.RestoreProfile(id, userID, dto.Name, dto.IsAvailable, joinedNGOs)
}
