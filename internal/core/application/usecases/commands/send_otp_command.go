package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrSendOtpCommandIsNotConstructed = errors.New(
		"SendOtpCommand must be created via NewSendOtpCommand constructor",
	)
)

// SendOtpCommand represents the assigned NGO requesting a pickup code for a
// scheduled donation.
type SendOtpCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewSendOtpCommand creates a command to issue and send a pickup code.
func NewSendOtpCommand(donationID kernel.UUID, actor account.Actor) (SendOtpCommand, error) {
	cmd := SendOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setActor(actor),
	); err != nil {
		return SendOtpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOtpCommand) Validate() error {
	return c.guard.Validate(ErrSendOtpCommandIsNotConstructed)
}

// DonationID returns the donation a code is requested for.
func (c SendOtpCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Actor returns the authenticated caller.
func (c SendOtpCommand) Actor() account.Actor {
	return c.actor
}

func (c *SendOtpCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *SendOtpCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
