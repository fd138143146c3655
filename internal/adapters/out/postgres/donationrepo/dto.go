// Package donationrepo provides data transfer objects and mapping functions
// for donation persistence. It implements the repository pattern for the
// donation aggregate, handling the conversion between domain entities and
// database representations.
package donationrepo

import (
	"time"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationDTO represents the database structure for persisting donation aggregates.
type DonationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonorID       uuid.UUID `gorm:"type:uuid;index"`
	Title         string
	PeopleFed     int
	PickupAddress string
	Pickup        GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Status        int         `gorm:"index"`
	AssignedNgoID *uuid.UUID  `gorm:"type:uuid;index"`
	OtpCode       *string
	OtpExpiresAt  *time.Time

	Items       []ItemDTO       `gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
	ProofImages []ProofImageDTO `gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for donation aggregates.
func (DonationDTO) TableName() string {
	return "donations"
}

// GeoPointDTO represents the embedded pickup coordinates within the donations table.
type GeoPointDTO struct {
	Longitude float64
	Latitude  float64
}

// ItemDTO is one line item of a donation.
type ItemDTO struct {
	ID         uint      `gorm:"primaryKey"`
	DonationID uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	Quantity   int
	Unit       string
	Condition  string
}

// TableName specifies the database table name for donation items.
func (ItemDTO) TableName() string {
	return "donation_items"
}

// ProofImageDTO is one delivery proof image URL attached at completion.
// The composite key makes re-inserting the same URL a no-op.
type ProofImageDTO struct {
	DonationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	URL        string    `gorm:"primaryKey"`
}

// TableName specifies the database table name for proof images.
func (ProofImageDTO) TableName() string {
	return "donation_proof_images"
}

func fromDomain(aggregate *donation.Donation) DonationDTO {
	var assignedNgoID *uuid.UUID
	if id := aggregate.AssignedNgoID(); id != nil {
		raw := id.Bytes()
		assignedNgoID = &raw
	}

	var otpCode *string
	var otpExpiresAt *time.Time
	if otp := aggregate.OTP(); otp != nil {
		code := otp.Code()
		expiresAt := otp.ExpiresAt()
		otpCode = &code
		otpExpiresAt = &expiresAt
	}

	donationID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			DonationID: donationID,
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			Unit:       item.Unit(),
			Condition:  item.Condition(),
		})
	}

	proofImages := make([]ProofImageDTO, 0, len(aggregate.ProofImages()))
	for _, url := range aggregate.ProofImages() {
		proofImages = append(proofImages, ProofImageDTO{
			DonationID: donationID,
			URL:        url,
		})
	}

	return DonationDTO{
		ID:            donationID,
		DonorID:       aggregate.DonorID().Bytes(),
		Title:         aggregate.Title(),
		PeopleFed:     aggregate.PeopleFed(),
		PickupAddress: aggregate.PickupAddress(),
		Pickup: GeoPointDTO{
			Longitude: aggregate.PickupPoint().Longitude(),
			Latitude:  aggregate.PickupPoint().Latitude(),
		},
		Status:        int(aggregate.Status()),
		AssignedNgoID: assignedNgoID,
		OtpCode:       otpCode,
		OtpExpiresAt:  otpExpiresAt,
		Items:         items,
		ProofImages:   proofImages,
	}
}

func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Pickup.Longitude, dto.Pickup.Latitude)
	if err != nil {
		return nil, err
	}

	var assignedNgoID *kernel.UUID
	if dto.AssignedNgoID != nil {
		ngoID, ngoErr := kernel.UUIDFromBytes((*dto.AssignedNgoID)[:])
		if ngoErr != nil {
			return nil, ngoErr
		}
		assignedNgoID = &ngoID
	}

	var otp *donation.OTP
	if dto.OtpCode != nil && dto.OtpExpiresAt != nil {
		restored, otpErr := donation.RestoreOTP(*dto.OtpCode, *dto.OtpExpiresAt)
		if otpErr != nil {
			return nil, otpErr
		}
		otp = &restored
	}

	items := make([]donation.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := donation.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Unit, itemDTO.Condition)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	proofImages := make([]string, 0, len(dto.ProofImages))
	for _, proofDTO := range dto.ProofImages {
		proofImages = append(proofImages, proofDTO.URL)
	}

	return donation.RestoreDonation(
		id,
		donorID,
		dto.Title,
		items,
		dto.PeopleFed,
		dto.PickupAddress,
		point,
		donation.Status(dto.Status),
		assignedNgoID,
		otp,
		proofImages,
	)
}
