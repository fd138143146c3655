package services_test

import (
	"testing"
	"time"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"
	"fooddonation/internal/core/domain/model/volunteer"
	"fooddonation/internal/core/domain/services"
	"fooddonation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formationFixture struct {
	former     services.TeamFormer
	don        *donation.Donation
	ngoProfile *ngo.Profile
	volunteers []*volunteer.Profile
	pickup     donation.Schedule
	delivery   donation.Schedule
}

// newFormationFixture builds an assigned donation and two volunteers on the
// NGO's roster, ready for team formation.
func newFormationFixture(t *testing.T) formationFixture {
	t.Helper()

	item, err := donation.NewItem("rice", 20, "kg", "packed")
	require.NoError(t, err)
	point, err := kernel.NewGeoPoint(77.59, 12.97)
	require.NoError(t, err)

	don, err := donation.NewDonation(
		kernel.NewUUID(), kernel.NewUUID(), "Wedding leftovers",
		[]donation.Item{item}, 40, "12 Market Street", point)
	require.NoError(t, err)

	ngoID := kernel.NewUUID()
	require.NoError(t, don.Assign(ngoID))

	volunteers := make([]*volunteer.Profile, 0, 2)
	rosterIDs := make([]kernel.UUID, 0, 2)
	for range 2 {
		v, err := volunteer.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Asha", true, []kernel.UUID{ngoID})
		require.NoError(t, err)
		volunteers = append(volunteers, v)
		rosterIDs = append(rosterIDs, v.ID())
	}

	ngoProfile, err := ngo.RestoreProfile(
		ngoID, kernel.NewUUID(), "Food Rescue Trust", rosterIDs, nil)
	require.NoError(t, err)

	pickup, err := donation.NewSchedule(time.Now().Add(2*time.Hour), "12 Market Street")
	require.NoError(t, err)
	delivery, err := donation.NewSchedule(time.Now().Add(4*time.Hour), "Shelter kitchen")
	require.NoError(t, err)

	return formationFixture{
		former:     services.NewTeamFormer(),
		don:        don,
		ngoProfile: ngoProfile,
		volunteers: volunteers,
		pickup:     pickup,
		delivery:   delivery,
	}
}

func TestTeamFormer_Form(t *testing.T) {
	t.Run("should form team, lock volunteers and schedule donation", func(t *testing.T) {
		f := newFormationFixture(t)
		teamID := kernel.NewUUID()
		leaderID := f.volunteers[0].ID()

		team, err := f.former.Form(
			teamID, f.don, f.ngoProfile, f.volunteers, leaderID, f.pickup, f.delivery)

		require.NoError(t, err)
		require.NotNil(t, team)
		assert.True(t, team.ID().IsEqual(teamID))
		assert.True(t, team.DonationID().IsEqual(f.don.ID()))
		assert.True(t, team.LeaderID().IsEqual(leaderID))
		assert.Len(t, team.Volunteers(), 2)
		assert.Equal(t, donation.StatusScheduled, f.don.Status())
		for _, v := range f.volunteers {
			assert.False(t, v.IsAvailable())
		}
	})

	t.Run("should fail for volunteer outside the NGO roster", func(t *testing.T) {
		f := newFormationFixture(t)
		outsider, err := volunteer.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Ravi")
		require.NoError(t, err)
		proposed := []*volunteer.Profile{outsider, f.volunteers[0]}

		_, err = f.former.Form(
			kernel.NewUUID(), f.don, f.ngoProfile, proposed,
			outsider.ID(), f.pickup, f.delivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrResourceConflict)
		assert.Contains(t, err.Error(), "volunteer not affiliated with NGO")
		assert.Equal(t, donation.StatusAssigned, f.don.Status())
		assert.True(t, f.volunteers[0].IsAvailable())
	})

	t.Run("should fail for volunteer missing from the roster side", func(t *testing.T) {
		f := newFormationFixture(t)
		ngoID := f.ngoProfile.ID()
		// member on the volunteer side only
		halfMember, err := volunteer.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Ravi", true, []kernel.UUID{ngoID})
		require.NoError(t, err)
		proposed := []*volunteer.Profile{halfMember}

		_, err = f.former.Form(
			kernel.NewUUID(), f.don, f.ngoProfile, proposed,
			halfMember.ID(), f.pickup, f.delivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrResourceConflict)
	})

	t.Run("should fail for unavailable volunteer", func(t *testing.T) {
		f := newFormationFixture(t)
		require.NoError(t, f.volunteers[1].Lock())

		_, err := f.former.Form(
			kernel.NewUUID(), f.don, f.ngoProfile, f.volunteers,
			f.volunteers[0].ID(), f.pickup, f.delivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrResourceConflict)
		assert.ErrorIs(t, err, volunteer.ErrNotAvailable)
		assert.Equal(t, donation.StatusAssigned, f.don.Status())
	})

	t.Run("should fail when leader is not a team member", func(t *testing.T) {
		f := newFormationFixture(t)

		_, err := f.former.Form(
			kernel.NewUUID(), f.don, f.ngoProfile, f.volunteers,
			kernel.NewUUID(), f.pickup, f.delivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrLeaderNotInTeam)
		assert.Equal(t, donation.StatusAssigned, f.don.Status())
	})

	t.Run("should fail for donation that is not assigned", func(t *testing.T) {
		f := newFormationFixture(t)
		item, err := donation.NewItem("bread", 5, "loaves", "fresh")
		require.NoError(t, err)
		point, err := kernel.NewGeoPoint(77.59, 12.97)
		require.NoError(t, err)
		unassigned, err := donation.NewDonation(
			kernel.NewUUID(), kernel.NewUUID(), "Bakery surplus",
			[]donation.Item{item}, 10, "5 Baker Street", point)
		require.NoError(t, err)

		_, err = f.former.Form(
			kernel.NewUUID(), unassigned, f.ngoProfile, f.volunteers,
			f.volunteers[0].ID(), f.pickup, f.delivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should fail for empty volunteer list", func(t *testing.T) {
		f := newFormationFixture(t)

		_, err := f.former.Form(
			kernel.NewUUID(), f.don, f.ngoProfile, nil,
			kernel.NewUUID(), f.pickup, f.delivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, donation.ErrVolunteersAreRequired)
	})
}
