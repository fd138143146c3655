package account

import (
	"errors"
	"fmt"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when using an Actor that was not
// created via the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the already-authenticated party invoking an operation.
// It carries only what authorization checks need: the user identifier and the
// resolved role. Actor is a value object; construction validates both fields.
//
// Example:
//
//	actor, err := account.NewActor(userID, account.RoleNGO)
//	if err != nil {
//	    return err
//	}
//	if err := actor.RequireRole(account.RoleNGO); err != nil {
//	    return err // not authorized
//	}
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a verified user identity.
// Both the identifier and the role must be valid.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// RequireRole returns a NotAuthorizedError unless the actor holds the
// expected role. Used as the first check in every command handler.
func (a Actor) RequireRole(expected Role) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if a.role != expected {
		return errs.NewNotAuthorizedErrorWithCause("actor",
			fmt.Errorf("role is %s, want %s", a.role, expected))
	}
	return nil
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	a.role = role
	return nil
}
