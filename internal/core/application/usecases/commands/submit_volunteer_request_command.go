package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrSubmitVolunteerRequestCommandIsNotConstructed = errors.New(
		"SubmitVolunteerRequestCommand must be created via NewSubmitVolunteerRequestCommand constructor",
	)
)

// SubmitVolunteerRequestCommand represents a volunteer asking to join an NGO.
type SubmitVolunteerRequestCommand struct { //nolint:recvcheck //using for validation
	joinRequestID kernel.UUID
	ngoID         kernel.UUID
	actor         account.Actor

	guard guard.ConstructorGuard
}

// NewSubmitVolunteerRequestCommand creates a command to request NGO membership.
func NewSubmitVolunteerRequestCommand(
	joinRequestID kernel.UUID,
	ngoID kernel.UUID,
	actor account.Actor,
) (SubmitVolunteerRequestCommand, error) {
	cmd := SubmitVolunteerRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJoinRequestID(joinRequestID),
		cmd.setNgoID(ngoID),
		cmd.setActor(actor),
	); err != nil {
		return SubmitVolunteerRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitVolunteerRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitVolunteerRequestCommandIsNotConstructed)
}

// JoinRequestID returns the identifier assigned to the new join request.
func (c SubmitVolunteerRequestCommand) JoinRequestID() kernel.UUID {
	return c.joinRequestID
}

// NgoID returns the NGO the volunteer wants to join.
func (c SubmitVolunteerRequestCommand) NgoID() kernel.UUID {
	return c.ngoID
}

// Actor returns the authenticated caller.
func (c SubmitVolunteerRequestCommand) Actor() account.Actor {
	return c.actor
}

func (c *SubmitVolunteerRequestCommand) setJoinRequestID(joinRequestID kernel.UUID) error {
	if err := joinRequestID.Validate(); err != nil {
		return err
	}

	c.joinRequestID = joinRequestID
	return nil
}

func (c *SubmitVolunteerRequestCommand) setNgoID(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}

	c.ngoID = ngoID
	return nil
}

func (c *SubmitVolunteerRequestCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
