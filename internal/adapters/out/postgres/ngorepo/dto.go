// Package ngorepo persists NGO profiles, their volunteer rosters, and the
// donations they have handled.
package ngorepo

import (
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"

	"github.com/google/uuid"
)

// NgoDTO represents the database structure for NGO profiles.
type NgoDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrganizationName string

	Volunteers []NgoVolunteerDTO `gorm:"foreignKey:NgoID;constraint:OnDelete:CASCADE"`
	Donations  []NgoDonationDTO  `gorm:"foreignKey:NgoID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for NGO profiles.
func (NgoDTO) TableName() string {
	return "ngos"
}

// NgoVolunteerDTO is the NGO's side of a volunteer membership. The composite
// key makes re-inserting a roster entry a no-op.
type NgoVolunteerDTO struct {
	NgoID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VolunteerID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for NGO rosters.
func (NgoVolunteerDTO) TableName() string {
	return "ngo_volunteers"
}

// NgoDonationDTO records one donation an NGO has handled.
type NgoDonationDTO struct {
	NgoID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for handled donations.
func (NgoDonationDTO) TableName() string {
	return "ngo_donations"
}

func fromDomain(profile *ngo.Profile) NgoDTO {
	ngoID := profile.ID().Bytes()

	volunteers := make([]NgoVolunteerDTO, 0, len(profile.Volunteers()))
	for _, volunteerID := range profile.Volunteers() {
		volunteers = append(volunteers, NgoVolunteerDTO{
			NgoID:       ngoID,
			VolunteerID: volunteerID.Bytes(),
		})
	}

	donations := make([]NgoDonationDTO, 0, len(profile.DonationsHandled()))
	for _, donationID := range profile.DonationsHandled() {
		donations = append(donations, NgoDonationDTO{
			NgoID:      ngoID,
			DonationID: donationID.Bytes(),
		})
	}

	return NgoDTO{
		ID:               ngoID,
		UserID:           profile.UserID().Bytes(),
		OrganizationName: profile.OrganizationName(),
		Volunteers:       volunteers,
		Donations:        donations,
	}
}

func toDomain(dto NgoDTO) (*ngo.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	volunteers := make([]kernel.UUID, 0, len(dto.Volunteers))
	for _, entry := range dto.Volunteers {
		volunteerID, volErr := kernel.UUIDFromBytes(entry.VolunteerID[:])
		if volErr != nil {
			return nil, volErr
		}
		volunteers = append(volunteers, volunteerID)
	}

	donations := make([]kernel.UUID, 0, len(dto.Donations))
	for _, entry := range dto.Donations {
		donationID, donErr := kernel.UUIDFromBytes(entry.DonationID[:])
		if donErr != nil {
			return nil, donErr
		}
		donations = append(donations, donationID)
	}

	return ngo.RestoreProfile(id, userID, dto.OrganizationName, volunteers, donations)
}
