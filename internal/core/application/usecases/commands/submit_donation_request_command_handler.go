package commands

import (
	"context"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/pkg/errs"
)

// SubmitDonationRequestCommandHandler handles NGO claims on open donations.
// A claim may only target a donation still in the "new" status; once a donor
// approves a competitor, late claims fail with a state conflict.
type SubmitDonationRequestCommandHandler struct {
	uowFactory ClaimUoWFactory
}

// NewSubmitDonationRequestCommandHandler creates a handler for claim submission.
func NewSubmitDonationRequestCommandHandler(uowFactory ClaimUoWFactory) SubmitDonationRequestCommandHandler {
	return SubmitDonationRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim submission command.
// Resolves the acting NGO's profile, checks the donation is still open, and
// records a pending claim request for the donor to decide on.
func (h SubmitDonationRequestCommandHandler) Handle(ctx context.Context, cmd SubmitDonationRequestCommand) error {
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

	profile, err := uow.NgoRepository().GetByUserID(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	don, err := uow.DonationRepository().Get(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if don.Status() != donation.StatusNew {
		return errs.NewStateConflictError("donation", don.Status().String())
	}

	request, err := donation.NewRequest(cmd.RequestID(), don.ID(), profile.ID(), cmd.Message())
	if err != nil {
		return err
	}

	if err = uow.RequestRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
