package commands

import (
	"context"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/donation"
)

// CreateDonationCommandHandler handles the business logic for posting donations.
// New donations start in the "new" status and wait for NGO claim requests.
type CreateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewCreateDonationCommandHandler creates a handler for donation creation.
// Requires a DonationUoWFactory for transactional persistence.
func NewCreateDonationCommandHandler(uowFactory DonationUoWFactory) CreateDonationCommandHandler {
	return CreateDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the donation creation command.
// Only donor actors may post donations. Content validation happens in the
// donation aggregate constructor.
func (h CreateDonationCommandHandler) Handle(ctx context.Context, cmd CreateDonationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().RequireRole(account.RoleDonor); err != nil {
		return err
	}

	don, err := donation.NewDonation(
		cmd.DonationID(),
		cmd.Actor().ID(),
		cmd.Title(),
		cmd.Items(),
		cmd.PeopleFed(),
		cmd.PickupAddress(),
		cmd.PickupPoint(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DonationRepository().Add(ctx, don); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
