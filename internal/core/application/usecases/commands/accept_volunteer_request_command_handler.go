package commands

import (
	"context"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/pkg/errs"
)

// AcceptVolunteerRequestCommandHandler handles join request acceptance.
// Acceptance establishes the membership on both sides: the volunteer's NGO
// set and the NGO's roster are updated together as idempotent set unions, so
// an accept retried after a partial failure converges to the same state.
type AcceptVolunteerRequestCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewAcceptVolunteerRequestCommandHandler creates a handler for join request acceptance.
func NewAcceptVolunteerRequestCommandHandler(uowFactory MembershipUoWFactory) AcceptVolunteerRequestCommandHandler {
	return AcceptVolunteerRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Only the NGO the request targets may accept it. Accepting an already
// accepted request is a no-op; accepting a rejected one is a state conflict.
func (h AcceptVolunteerRequestCommandHandler) Handle(ctx context.Context, cmd AcceptVolunteerRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireRole(account.RoleNGO); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	volunteerRepo := uow.VolunteerRepository()
	ngoRepo := uow.NgoRepository()
	joinRequestRepo := uow.JoinRequestRepository()

	request, err := joinRequestRepo.Get(ctx, cmd.JoinRequestID())
	if err != nil {
		return err
	}

	profile, err := ngoRepo.GetByUserID(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if !request.NgoID().IsEqual(profile.ID()) {
		return errs.NewNotAuthorizedError("join request")
	}

	changed, err := request.Accept()
	if err != nil {
		return err
	}
	if !changed {
		return uow.Commit(ctx)
	}

	volunteerProfile, err := volunteerRepo.Get(ctx, request.VolunteerID())
	if err != nil {
		return err
	}

	if err = volunteerProfile.JoinNGO(profile.ID()); err != nil {
		return err
	}

	if err = profile.AddVolunteer(volunteerProfile.ID()); err != nil {
		return err
	}

	if err = joinRequestRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = volunteerRepo.Update(ctx, volunteerProfile); err != nil {
		return err
	}

	if err = ngoRepo.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
