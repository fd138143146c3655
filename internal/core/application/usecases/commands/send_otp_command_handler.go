package commands

import (
	"context"
	"time"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/ports"
	"fooddonation/internal/pkg/errs"
)

// SendOtpCommandHandler handles pickup code issuance for scheduled donations.
// The code is persisted on the donation and handed to an out-of-band notifier;
// it is never returned to the caller. Re-sending replaces the previous code
// with a fresh one and a fresh expiry.
type SendOtpCommandHandler struct {
	uowFactory PickupUoWFactory
	notifier   ports.OTPNotifier
	ttl        time.Duration
}

// NewSendOtpCommandHandler creates a handler for pickup code issuance.
// A non-positive ttl falls back to the donation package default.
func NewSendOtpCommandHandler(
	uowFactory PickupUoWFactory,
	notifier ports.OTPNotifier,
	ttl time.Duration,
) SendOtpCommandHandler {
	if ttl <= 0 {
		ttl = donation.DefaultOTPTTL
	}

	return SendOtpCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		ttl:        ttl,
	}
}

// Handle processes the code issuance command.
// Only the assigned NGO may request a code, and only while the donation is
// scheduled. Notification happens inside the transaction window so a failed
// delivery rolls the new code back.
func (h SendOtpCommandHandler) Handle(ctx context.Context, cmd SendOtpCommand) error {
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

	otp, err := don.IssueOTP(time.Now(), h.ttl)
	if err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, don); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, don.ID(), otp.Code(), otp.ExpiresAt()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
