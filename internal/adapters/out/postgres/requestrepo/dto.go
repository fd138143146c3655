// Package requestrepo persists donation claim requests.
package requestrepo

import (
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for claim requests.
type RequestDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationID uuid.UUID `gorm:"type:uuid;index"`
	NgoID      uuid.UUID `gorm:"type:uuid;index"`
	Message    string
	Status     int `gorm:"index"`
}

// TableName specifies the database table name for claim requests.
func (RequestDTO) TableName() string {
	return "donation_requests"
}

func fromDomain(request *donation.Request) RequestDTO {
	return RequestDTO{
		ID:         request.ID().Bytes(),
		DonationID: request.DonationID().Bytes(),
		NgoID:      request.NgoID().Bytes(),
		Message:    request.Message(),
		Status:     int(request.Status()),
	}
}

func toDomain(dto RequestDTO) (*donation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donationID, err := kernel.UUIDFromBytes(dto.DonationID[:])
	if err != nil {
		return nil, err
	}

	ngoID, err := kernel.UUIDFromBytes(dto.NgoID[:])
	if err != nil {
		return nil, err
	}

	return donation.RestoreRequest(id, donationID, ngoID, dto.Message, donation.RequestStatus(dto.Status))
}
