package commands

import (
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/guard"
)

var (
	ErrApproveDonationRequestCommandIsNotConstructed = errors.New(
		"ApproveDonationRequestCommand must be created via NewApproveDonationRequestCommand constructor",
	)
)

// ApproveDonationRequestCommand represents a donor's decision to hand a
// donation to the NGO behind one pending claim request.
type ApproveDonationRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actor     account.Actor

	guard guard.ConstructorGuard
}

// NewApproveDonationRequestCommand creates a command to approve a claim request.
func NewApproveDonationRequestCommand(
	requestID kernel.UUID,
	actor account.Actor,
) (ApproveDonationRequestCommand, error) {
	cmd := ApproveDonationRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActor(actor),
	); err != nil {
		return ApproveDonationRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDonationRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveDonationRequestCommandIsNotConstructed)
}

// RequestID returns the claim request being approved.
func (c ApproveDonationRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Actor returns the authenticated caller.
func (c ApproveDonationRequestCommand) Actor() account.Actor {
	return c.actor
}

func (c *ApproveDonationRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ApproveDonationRequestCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
