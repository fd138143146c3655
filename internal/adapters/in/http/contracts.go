package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDonationItem is one line of a posted donation.
type NewDonationItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	Condition string `json:"condition"`
}

// NewDonation is the request body for posting a donation.
type NewDonation struct {
	Title           string            `json:"title"`
	Items           []NewDonationItem `json:"items"`
	PeopleFed       int               `json:"people_fed"`
	PickupAddress   string            `json:"pickup_address"`
	PickupLongitude float64           `json:"pickup_longitude"`
	PickupLatitude  float64           `json:"pickup_latitude"`
}

// NewDonationRequest is the request body for claiming a donation.
type NewDonationRequest struct {
	Message string `json:"message"`
}

// Schedule is a pickup or delivery slot.
type Schedule struct {
	At       time.Time `json:"at"`
	Location string    `json:"location"`
}

// SchedulePickup is the request body for forming a pickup team.
type SchedulePickup struct {
	VolunteerIds []uuid.UUID `json:"volunteer_ids"`
	LeaderId     uuid.UUID   `json:"leader_id"`
	Pickup       Schedule    `json:"pickup"`
	Delivery     Schedule    `json:"delivery"`
}

// VerifyOtp is the request body for submitting a pickup code.
type VerifyOtp struct {
	Code string `json:"code"`
}

// Created reports the ID assigned to a newly created resource.
type Created struct {
	Id uuid.UUID `json:"id"`
}

// OpenDonation is one donation in the open listing.
type OpenDonation struct {
	Id              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PeopleFed       int       `json:"people_fed"`
	PickupAddress   string    `json:"pickup_address"`
	PickupLongitude float64   `json:"pickup_longitude"`
	PickupLatitude  float64   `json:"pickup_latitude"`
}

// RosterVolunteer is one volunteer on an NGO's roster.
type RosterVolunteer struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IsAvailable bool      `json:"is_available"`
}
