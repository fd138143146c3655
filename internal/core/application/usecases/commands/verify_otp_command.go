package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrVerifyOtpCommandIsNotConstructed = errors.New(
		"VerifyOtpCommand must be created via NewVerifyOtpCommand constructor",
	)
	ErrOtpCodeIsRequired = errors.New("otp code is required")
)

// VerifyOtpCommand represents the assigned NGO confirming physical pickup by
// submitting the code the donor received.
type VerifyOtpCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	actor      account.Actor
	code       string

	guard guard.ConstructorGuard
}

// NewVerifyOtpCommand creates a command to confirm pickup with a code.
func NewVerifyOtpCommand(donationID kernel.UUID, actor account.Actor, code string) (VerifyOtpCommand, error) {
	cmd := VerifyOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setActor(actor),
		cmd.setCode(code),
	); err != nil {
		return VerifyOtpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOtpCommandIsNotConstructed)
}

// DonationID returns the donation whose pickup is being confirmed.
func (c VerifyOtpCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Actor returns the authenticated caller.
func (c VerifyOtpCommand) Actor() account.Actor {
	return c.actor
}

// Code returns the submitted pickup code.
func (c VerifyOtpCommand) Code() string {
	return c.code
}

func (c *VerifyOtpCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *VerifyOtpCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *VerifyOtpCommand) setCode(code string) error {
	if code == "" {
		return ErrOtpCodeIsRequired
	}

	c.code = code
	return nil
}
