// Package teamrepo persists pickup teams.
package teamrepo

import (
	"time"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TeamDTO represents the database structure for pickup teams.
// A donation has at most one team.
type TeamDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LeaderID         uuid.UUID `gorm:"type:uuid"`
	PickupAt         time.Time
	PickupLocation   string
	DeliveryAt       time.Time
	DeliveryLocation string

	Members []TeamMemberDTO `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for teams.
func (TeamDTO) TableName() string {
	return "teams"
}

// TeamMemberDTO is one volunteer on a team. The composite key makes
// re-inserting a membership a no-op.
type TeamMemberDTO struct {
	TeamID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	VolunteerID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for team members.
func (TeamMemberDTO) TableName() string {
	return "team_members"
}

func fromDomain(team *donation.Team) TeamDTO {
	teamID := team.ID().Bytes()

	members := make([]TeamMemberDTO, 0, len(team.Volunteers()))
	for _, volunteerID := range team.Volunteers() {
		members = append(members, TeamMemberDTO{
			TeamID:      teamID,
			VolunteerID: volunteerID.Bytes(),
		})
	}

	return TeamDTO{
		ID:               teamID,
		DonationID:       team.DonationID().Bytes(),
		LeaderID:         team.LeaderID().Bytes(),
		PickupAt:         team.PickupSchedule().At(),
		PickupLocation:   team.PickupSchedule().Location(),
		DeliveryAt:       team.DeliverySchedule().At(),
		DeliveryLocation: team.DeliverySchedule().Location(),
		Members:          members,
	}
}

func toDomain(dto TeamDTO) (*donation.Team, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donationID, err := kernel.UUIDFromBytes(dto.DonationID[:])
	if err != nil {
		return nil, err
	}

	leaderID, err := kernel.UUIDFromBytes(dto.LeaderID[:])
	if err != nil {
		return nil, err
	}

	volunteers := make([]kernel.UUID, 0, len(dto.Members))
	for _, member := range dto.Members {
		volunteerID, memberErr := kernel.UUIDFromBytes(member.VolunteerID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		volunteers = append(volunteers, volunteerID)
	}

	pickupSchedule, err := donation.NewSchedule(dto.PickupAt, dto.PickupLocation)
	if err != nil {
		return nil, err
	}

	deliverySchedule, err := donation.NewSchedule(dto.DeliveryAt, dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}

	return donation.RestoreTeam(id, donationID, volunteers, leaderID, pickupSchedule, deliverySchedule)
}
