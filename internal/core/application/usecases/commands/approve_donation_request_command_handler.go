package commands

import (
	"context"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/pkg/errs"
)

// ApproveDonationRequestCommandHandler handles the donor's approval decision.
// Approving a claim assigns the donation to the winning NGO and auto-rejects
// every competing pending claim in the same transaction. The donation update
// is a compare-and-set on its loaded status, so two donors racing to approve
// different claims on the same donation produce exactly one winner.
type ApproveDonationRequestCommandHandler struct {
	uowFactory ClaimUoWFactory
}

// NewApproveDonationRequestCommandHandler creates a handler for claim approval.
func NewApproveDonationRequestCommandHandler(uowFactory ClaimUoWFactory) ApproveDonationRequestCommandHandler {
	return ApproveDonationRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Only the donation's owner may approve. The winning NGO's profile records
// the donation in its handled set.
func (h ApproveDonationRequestCommandHandler) Handle(ctx context.Context, cmd ApproveDonationRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireRole(account.RoleDonor); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	donationRepo := uow.DonationRepository()
	ngoRepo := uow.NgoRepository()

	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	don, err := donationRepo.Get(ctx, request.DonationID())
	if err != nil {
		return err
	}

	if !don.IsOwnedBy(cmd.Actor().ID()) {
		return errs.NewNotAuthorizedError("donation")
	}

	if err = request.Approve(); err != nil {
		return err
	}

	if err = don.Assign(request.NgoID()); err != nil {
		return err
	}

	competitors, err := requestRepo.GetPendingByDonation(ctx, don.ID())
	if err != nil {
		return err
	}

	for _, competitor := range competitors {
		if competitor.IsEqual(request) {
			continue
		}
		if err = competitor.Reject(); err != nil {
			return err
		}
		if err = requestRepo.Update(ctx, competitor); err != nil {
			return err
		}
	}

	profile, err := ngoRepo.Get(ctx, request.NgoID())
	if err != nil {
		return err
	}

	if err = profile.RecordDonation(don.ID()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = donationRepo.Update(ctx, don); err != nil {
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
