// Package joinrequestrepo persists volunteer join requests.
package joinrequestrepo

import (
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"

	"github.com/google/uuid"
)

// JoinRequestDTO represents the database structure for join requests.
type JoinRequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	NgoID       uuid.UUID `gorm:"type:uuid;index:idx_join_requests_pair"`
	VolunteerID uuid.UUID `gorm:"type:uuid;index:idx_join_requests_pair"`
	Status      int       `gorm:"index"`
}

// TableName specifies the database table name for join requests.
func (JoinRequestDTO) TableName() string {
	return "join_requests"
}

func fromDomain(request *ngo.JoinRequest) JoinRequestDTO {
	return JoinRequestDTO{
		ID:          request.ID().Bytes(),
		NgoID:       request.NgoID().Bytes(),
		VolunteerID: request.VolunteerID().Bytes(),
		Status:      int(request.Status()),
	}
}

func toDomain(dto JoinRequestDTO) (*ngo.JoinRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ngoID, err := kernel.UUIDFromBytes(dto.NgoID[:])
	if err != nil {
		return nil, err
	}

	volunteerID, err := kernel.UUIDFromBytes(dto.VolunteerID[:])
	if err != nil {
		return nil, err
	}

	return ngo.RestoreJoinRequest(id, ngoID, volunteerID, ngo.JoinRequestStatus(dto.Status))
}
