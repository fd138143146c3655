package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrCompleteDonationCommandIsNotConstructed = errors.New(
		"CompleteDonationCommand must be created via NewCompleteDonationCommand constructor",
	)
	ErrProofImagesAreRequired = errors.New("at least one proof image is required")
)

// CompleteDonationCommand represents the assigned NGO closing out a picked
// donation with delivery proof images.
type CompleteDonationCommand struct { //nolint:recvcheck //using for validation
	donationID  kernel.UUID
	actor       account.Actor
	proofImages []string

	guard guard.ConstructorGuard
}

// NewCompleteDonationCommand creates a command to complete a donation.
// Proof images are URLs of already-uploaded delivery photos.
func NewCompleteDonationCommand(
	donationID kernel.UUID,
	actor account.Actor,
	proofImages []string,
) (CompleteDonationCommand, error) {
	cmd := CompleteDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setActor(actor),
		cmd.setProofImages(proofImages),
	); err != nil {
		return CompleteDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDonationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDonationCommandIsNotConstructed)
}

// DonationID returns the donation being completed.
func (c CompleteDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Actor returns the authenticated caller.
func (c CompleteDonationCommand) Actor() account.Actor {
	return c.actor
}

// ProofImages returns the delivery proof image URLs.
func (c CompleteDonationCommand) ProofImages() []string {
	images := make([]string, len(c.proofImages))
	copy(images, c.proofImages)
	return images
}

func (c *CompleteDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *CompleteDonationCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteDonationCommand) setProofImages(proofImages []string) error {
	if len(proofImages) == 0 {
		return ErrProofImagesAreRequired
	}

	c.proofImages = make([]string, len(proofImages))
	copy(c.proofImages, proofImages)
	return nil
}
