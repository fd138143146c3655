package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrSubmitDonationRequestCommandIsNotConstructed = errors.New(
		"SubmitDonationRequestCommand must be created via NewSubmitDonationRequestCommand constructor",
	)
)

// SubmitDonationRequestCommand represents an NGO's claim on an unassigned donation.
type SubmitDonationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	donationID kernel.UUID
	actor      account.Actor
	message    string

	guard guard.ConstructorGuard
}

// NewSubmitDonationRequestCommand creates a command to claim a donation.
// The message accompanies the request and is shown to the donor.
func NewSubmitDonationRequestCommand(
	requestID kernel.UUID,
	donationID kernel.UUID,
	actor account.Actor,
	message string,
) (SubmitDonationRequestCommand, error) {
	cmd := SubmitDonationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setDonationID(donationID),
		cmd.setActor(actor),
	); err != nil {
		return SubmitDonationRequestCommand{}, err
	}

	cmd.message = message

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDonationRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDonationRequestCommandIsNotConstructed)
}

// RequestID returns the identifier assigned to the new claim request.
func (c SubmitDonationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// DonationID returns the donation being claimed.
func (c SubmitDonationRequestCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Actor returns the authenticated caller.
func (c SubmitDonationRequestCommand) Actor() account.Actor {
	return c.actor
}

// Message returns the free-form message shown to the donor.
func (c SubmitDonationRequestCommand) Message() string {
	return c.message
}

func (c *SubmitDonationRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitDonationRequestCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *SubmitDonationRequestCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
