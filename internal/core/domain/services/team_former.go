package services

import (
	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/core/domain/model/volunteer"
	"fooddonation/internal/pkg/errs"
)

// TeamFormer is a domain service that forms a pickup/delivery team for an
// assigned donation from an NGO's volunteer pool.
//
// Business rules:
//   - The leader must be one of the proposed volunteers
//   - Every proposed volunteer must belong to the scheduling NGO's roster
//   - Every proposed volunteer must be available (not on another active team)
//   - Formation is all-or-nothing: any ineligible volunteer fails the whole
//     operation before any availability flag changes
//
// Example usage:
//
//	former := services.NewTeamFormer()
//	team, err := former.Form(teamID, don, ngoProfile, profiles, leaderID, pickup, delivery)
//	if errors.Is(err, errs.ErrResourceConflict) {
//	    // a volunteer is unavailable or not affiliated
//	    return
//	}
type TeamFormer struct{}

// NewTeamFormer creates a new TeamFormer instance.
func NewTeamFormer() TeamFormer {
	return TeamFormer{}
}

// Form validates eligibility and builds the team, locking every volunteer
// profile in memory. The caller persists the locked profiles, the team, and
// the donation's Scheduled transition in a single transaction so a failure
// anywhere rolls the locks back.
func (f TeamFormer) Form(
	teamID kernel.UUID,
	don *donation.Donation,
	ngoProfile *ngo.Profile,
	volunteers []*volunteer.Profile,
	leaderID kernel.UUID,
	pickupSchedule donation.Schedule,
	deliverySchedule donation.Schedule,
) (*donation.Team, error) {
	if err := don.Validate(); err != nil {
		return nil, err
	}
	if err := ngoProfile.Validate(); err != nil {
		return nil, err
	}

	volunteerIDs := make([]kernel.UUID, 0, len(volunteers))
	for _, v := range volunteers {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if !v.IsMemberOf(ngoProfile.ID()) || !ngoProfile.HasVolunteer(v.ID()) {
			return nil, errs.NewResourceConflictError("volunteer not affiliated with NGO", v.ID().String())
		}

		if err := v.Lock(); err != nil {
			return nil, errs.NewResourceConflictErrorWithCause("volunteer unavailable", v.ID().String(), err)
		}

		volunteerIDs = append(volunteerIDs, v.ID())
	}

	team, err := donation.NewTeam(teamID, don.ID(), volunteerIDs, leaderID, pickupSchedule, deliverySchedule)
	if err != nil {
		return nil, err
	}

	if err := don.Schedule(); err != nil {
		return nil, err
	}

	return team, nil
}
