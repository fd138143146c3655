package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrAcceptVolunteerRequestCommandIsNotConstructed = errors.New(
		"AcceptVolunteerRequestCommand must be created via NewAcceptVolunteerRequestCommand constructor",
	)
)

// AcceptVolunteerRequestCommand represents an NGO accepting a volunteer's
// pending join request.
type AcceptVolunteerRequestCommand struct { //nolint:recvcheck //using for validation
	joinRequestID kernel.UUID
	actor         account.Actor

	guard guard.ConstructorGuard
}

// NewAcceptVolunteerRequestCommand creates a command to accept a join request.
func NewAcceptVolunteerRequestCommand(
	joinRequestID kernel.UUID,
	actor account.Actor,
) (AcceptVolunteerRequestCommand, error) {
	cmd := AcceptVolunteerRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJoinRequestID(joinRequestID),
		cmd.setActor(actor),
	); err != nil {
		return AcceptVolunteerRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptVolunteerRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptVolunteerRequestCommandIsNotConstructed)
}

// JoinRequestID returns the join request being accepted.
func (c AcceptVolunteerRequestCommand) JoinRequestID() kernel.UUID {
	return c.joinRequestID
}

// Actor returns the authenticated caller.
func (c AcceptVolunteerRequestCommand) Actor() account.Actor {
	return c.actor
}

func (c *AcceptVolunteerRequestCommand) setJoinRequestID(joinRequestID kernel.UUID) error {
	if err := joinRequestID.Validate(); err != nil {
		return err
	}

	c.joinRequestID = joinRequestID
	return nil
}

func (c *AcceptVolunteerRequestCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
