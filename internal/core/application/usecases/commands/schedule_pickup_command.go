package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrSchedulePickupCommandIsNotConstructed = errors.New(
		"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
	)
	ErrVolunteersAreRequired = errors.New("at least one volunteer is required")
)

// SchedulePickupCommand represents an NGO forming a volunteer team for an
// assigned donation and scheduling pickup and delivery.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	teamID           kernel.UUID
	donationID       kernel.UUID
	actor            account.Actor
	volunteerIDs     []kernel.UUID
	leaderID         kernel.UUID
	pickupSchedule   donation.Schedule
	deliverySchedule donation.Schedule

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a command to form a pickup team.
// The leader must be one of the listed volunteers; that rule is enforced by
// the team aggregate at handling time.
func NewSchedulePickupCommand(
	teamID kernel.UUID,
	donationID kernel.UUID,
	actor account.Actor,
	volunteerIDs []kernel.UUID,
	leaderID kernel.UUID,
	pickupSchedule donation.Schedule,
	deliverySchedule donation.Schedule,
) (SchedulePickupCommand, error) {
	cmd := SchedulePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTeamID(teamID),
		cmd.setDonationID(donationID),
		cmd.setActor(actor),
		cmd.setVolunteerIDs(volunteerIDs),
		cmd.setLeaderID(leaderID),
	); err != nil {
		return SchedulePickupCommand{}, err
	}

	cmd.pickupSchedule = pickupSchedule
	cmd.deliverySchedule = deliverySchedule

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// TeamID returns the identifier assigned to the new team.
func (c SchedulePickupCommand) TeamID() kernel.UUID {
	return c.teamID
}

// DonationID returns the donation being scheduled.
func (c SchedulePickupCommand) DonationID() kernel.UUID {
	return c.donationID
}

// Actor returns the authenticated caller.
func (c SchedulePickupCommand) Actor() account.Actor {
	return c.actor
}

// VolunteerIDs returns the volunteers selected for the team.
func (c SchedulePickupCommand) VolunteerIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.volunteerIDs))
	copy(ids, c.volunteerIDs)
	return ids
}

// LeaderID returns the volunteer designated as team leader.
func (c SchedulePickupCommand) LeaderID() kernel.UUID {
	return c.leaderID
}

// PickupSchedule returns when and where the team picks the donation up.
func (c SchedulePickupCommand) PickupSchedule() donation.Schedule {
	return c.pickupSchedule
}

// DeliverySchedule returns when and where the team delivers it.
func (c SchedulePickupCommand) DeliverySchedule() donation.Schedule {
	return c.deliverySchedule
}

func (c *SchedulePickupCommand) setTeamID(teamID kernel.UUID) error {
	if err := teamID.Validate(); err != nil {
		return err
	}

	c.teamID = teamID
	return nil
}

func (c *SchedulePickupCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *SchedulePickupCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SchedulePickupCommand) setVolunteerIDs(volunteerIDs []kernel.UUID) error {
	if len(volunteerIDs) == 0 {
		return ErrVolunteersAreRequired
	}

	c.volunteerIDs = make([]kernel.UUID, len(volunteerIDs))
	copy(c.volunteerIDs, volunteerIDs)
	return nil
}

func (c *SchedulePickupCommand) setLeaderID(leaderID kernel.UUID) error {
	if err := leaderID.Validate(); err != nil {
		return err
	}

	c.leaderID = leaderID
	return nil
}
