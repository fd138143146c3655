package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrCreateDonationCommandIsNotConstructed = errors.New(
		"CreateDonationCommand must be created via NewCreateDonationCommand constructor",
	)
)

// CreateDonationCommand represents a donor's request to post a new donation.
// Encapsulates the donation content, the pickup address, and its coordinates.
//
// Example:
//
//	donationID := kernel.NewUUID()
//	item, _ := donation.NewItem("rice", 20, "kg", "packed")
//	cmd, err := NewCreateDonationCommand(donationID, actor, "Warehouse surplus",
//	    []donation.Item{item}, 40, "12 Market Street", point)
//	if err != nil {
//	    return fmt.Errorf("invalid donation data: %w", err)
//	}
//
//	handler := NewCreateDonationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create donation: %w", err)
//	}
type CreateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID    kernel.UUID
	actor         account.Actor
	title         string
	items         []donation.Item
	peopleFed     int
	pickupAddress string
	pickupPoint   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateDonationCommand creates a command to post a new donation.
// The actor must be a valid account actor; content validation is delegated
// to the donation aggregate at handling time.
func NewCreateDonationCommand(
	donationID kernel.UUID,
	actor account.Actor,
	title string,
	items []donation.Item,
	peopleFed int,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
) (CreateDonationCommand, error) {
	cmd := CreateDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setActor(actor),
	); err != nil {
		return CreateDonationCommand{}, err
	}

	cmd.title = title
	cmd.items = items
	cmd.peopleFed = peopleFed
	cmd.pickupAddress = pickupAddress
	cmd.pickupPoint = pickupPoint

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDonationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationCommandIsNotConstructed)
}

// DonationID returns the identifier assigned to the new donation.
func (c CreateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Actor returns the authenticated caller.
func (c CreateDonationCommand) Actor() account.Actor {
	return c.actor
}

// Title returns the donation title.
func (c CreateDonationCommand) Title() string {
	return c.title
}

// Items returns the donated items.
func (c CreateDonationCommand) Items() []donation.Item {
	return c.items
}

// PeopleFed returns the estimated number of people the donation can feed.
func (c CreateDonationCommand) PeopleFed() int {
	return c.peopleFed
}

// PickupAddress returns the human-readable pickup address.
func (c CreateDonationCommand) PickupAddress() string {
	return c.pickupAddress
}

// PickupPoint returns the pickup coordinates.
func (c CreateDonationCommand) PickupPoint() kernel.GeoPoint {
	return c.pickupPoint
}

func (c *CreateDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *CreateDonationCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
