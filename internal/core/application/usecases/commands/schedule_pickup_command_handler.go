package commands

import (
	"context"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/services"
	"fooddonation/internal/pkg/errs"
)

// SchedulePickupCommandHandler handles team formation for assigned donations.
// Forming a team reserves every selected volunteer: each one must be an
// affiliated member of the acting NGO and currently available. The volunteer
// locks, the team record, and the donation's Scheduled transition are
// committed in one transaction, so a single unavailable volunteer rolls the
// whole formation back.
type SchedulePickupCommandHandler struct {
	uowFactory TeamUoWFactory
}

// NewSchedulePickupCommandHandler creates a handler for team formation.
func NewSchedulePickupCommandHandler(uowFactory TeamUoWFactory) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the team formation command.
// The repository-level Lock is a conditional update on the availability flag,
// so two NGOs racing for the same volunteer cannot both win: the second lock
// matches zero rows and fails with a resource conflict.
func (h SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) error {
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

	volunteers, err := volunteerRepo.GetByIDs(ctx, cmd.VolunteerIDs())
	if err != nil {
		return err
	}

	team, err := services.NewTeamFormer().Form(
		cmd.TeamID(),
		don,
		profile,
		volunteers,
		cmd.LeaderID(),
		cmd.PickupSchedule(),
		cmd.DeliverySchedule(),
	)
	if err != nil {
		return err
	}

	for _, v := range volunteers {
		if err = volunteerRepo.Lock(ctx, v.ID()); err != nil {
			return err
		}
	}

	if err = uow.TeamRepository().Add(ctx, team); err != nil {
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
