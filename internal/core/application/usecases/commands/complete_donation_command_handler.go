package commands

import (
	"context"
	"errors"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/pkg/errs"
)

// CompleteDonationCommandHandler handles donation completion.
// Completing moves the donation from Picked to Completed, attaches the proof
// images, and releases every volunteer on the pickup team back to available.
// The release is unconditional, so retrying a failed completion never leaves
// a volunteer stuck.
type CompleteDonationCommandHandler struct {
	uowFactory TeamUoWFactory
}

// NewCompleteDonationCommandHandler creates a handler for donation completion.
func NewCompleteDonationCommandHandler(uowFactory TeamUoWFactory) CompleteDonationCommandHandler {
	return CompleteDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Only the assigned NGO may complete. A donation with no team on record is
// still completed; there is just nobody to release.
func (h CompleteDonationCommandHandler) Handle(ctx context.Context, cmd CompleteDonationCommand) error {
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

	donationRepo := uow.DonationRepository()
	volunteerRepo := uow.VolunteerRepository()

	profile, err := uow.NgoRepository().GetByUserID(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	don, err := donationRepo.Get(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if don.AssignedNgoID() == nil || !don.AssignedNgoID().IsEqual(profile.ID()) {
		return errs.NewNotAuthorizedError("donation")
	}

	if err = don.Complete(cmd.ProofImages()); err != nil {
		return err
	}

	team, err := uow.TeamRepository().GetByDonation(ctx, don.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if team != nil {
		for _, volunteerID := range team.Volunteers() {
			if err = volunteerRepo.Release(ctx, volunteerID); err != nil {
				return err
			}
		}
	}

	if err = donationRepo.Update(ctx, don); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
