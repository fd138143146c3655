package commands

import (
	"context"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/pkg/errs"
)

// SubmitVolunteerRequestCommandHandler handles volunteer membership requests.
// A volunteer may have at most one active request per NGO: a pending or
// accepted request for the same pair makes a new submission a conflict, as
// does an existing membership.
type SubmitVolunteerRequestCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewSubmitVolunteerRequestCommandHandler creates a handler for join requests.
func NewSubmitVolunteerRequestCommandHandler(uowFactory MembershipUoWFactory) SubmitVolunteerRequestCommandHandler {
	return SubmitVolunteerRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the join request command.
func (h SubmitVolunteerRequestCommandHandler) Handle(ctx context.Context, cmd SubmitVolunteerRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireRole(account.RoleVolunteer); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	joinRequestRepo := uow.JoinRequestRepository()

	profile, err := uow.VolunteerRepository().GetByUserID(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	ngoProfile, err := uow.NgoRepository().Get(ctx, cmd.NgoID())
	if err != nil {
		return err
	}

	if profile.IsMemberOf(ngoProfile.ID()) {
		return errs.NewResourceConflictError("membership", ngoProfile.ID())
	}

	active, err := joinRequestRepo.HasActive(ctx, ngoProfile.ID(), profile.ID())
	if err != nil {
		return err
	}
	if active {
		return errs.NewResourceConflictError("join request", ngoProfile.ID())
	}

	request, err := ngo.NewJoinRequest(cmd.JoinRequestID(), ngoProfile.ID(), profile.ID())
	if err != nil {
		return err
	}

	if err = joinRequestRepo.Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
