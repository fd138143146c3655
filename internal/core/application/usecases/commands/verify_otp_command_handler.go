package commands

import (
	"context"
	"time"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/pkg/errs"
)

// VerifyOtpCommandHandler handles pickup confirmation.
// A correct, unexpired code moves the donation from Scheduled to Picked and
// consumes the code. Expiry is checked lazily at verification time; an
// expired code is never accepted regardless of correctness.
type VerifyOtpCommandHandler struct {
	uowFactory PickupUoWFactory
}

// NewVerifyOtpCommandHandler creates a handler for pickup confirmation.
func NewVerifyOtpCommandHandler(uowFactory PickupUoWFactory) VerifyOtpCommandHandler {
	return VerifyOtpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation command.
// Only the assigned NGO may confirm. The status write is a compare-and-set,
// so concurrent confirmations of the same donation produce one winner.
func (h VerifyOtpCommandHandler) Handle(ctx context.Context, cmd VerifyOtpCommand) error {
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

	if err = don.VerifyOTP(cmd.Code(), time.Now()); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, don); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
