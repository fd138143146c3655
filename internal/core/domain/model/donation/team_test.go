package donation_test

import (
	"testing"
	"time"

	"fooddonation/internal/core/domain/model/donation"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchedule(t *testing.T) donation.Schedule {
	t.Helper()
	s, err := donation.NewSchedule(time.Now().Add(24*time.Hour), "warehouse gate")
	require.NoError(t, err)
	return s
}

func TestNewSchedule(t *testing.T) {
	t.Run("should create schedule with time and location", func(t *testing.T) {
		at := time.Now().Add(time.Hour)

		s, err := donation.NewSchedule(at, "dock 4")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, at, s.At())
		assert.Equal(t, "dock 4", s.Location())
	})

	t.Run("should allow empty location", func(t *testing.T) {
		s, err := donation.NewSchedule(time.Now(), "")

		require.NoError(t, err)
		assert.Empty(t, s.Location())
	})

	t.Run("should fail with zero time", func(t *testing.T) {
		_, err := donation.NewSchedule(time.Time{}, "dock 4")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for zero value schedule", func(t *testing.T) {
		var s donation.Schedule

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, donation.ErrScheduleIsNotConstructed, err)
	})
}

func TestNewTeam(t *testing.T) {
	teamID := kernel.NewUUID()
	donationID := kernel.NewUUID()
	v1 := kernel.NewUUID()
	v2 := kernel.NewUUID()

	t.Run("should create team with leader among volunteers", func(t *testing.T) {
		team, err := donation.NewTeam(
			teamID, donationID, []kernel.UUID{v1, v2}, v1,
			validSchedule(t), validSchedule(t))

		require.NoError(t, err)
		require.NoError(t, team.Validate())
		assert.True(t, team.ID().IsEqual(teamID))
		assert.True(t, team.DonationID().IsEqual(donationID))
		assert.Len(t, team.Volunteers(), 2)
		assert.True(t, team.LeaderID().IsEqual(v1))
		assert.True(t, team.HasVolunteer(v1))
		assert.True(t, team.HasVolunteer(v2))
		assert.False(t, team.HasVolunteer(kernel.NewUUID()))
	})

	t.Run("should allow single volunteer team with self as leader", func(t *testing.T) {
		team, err := donation.NewTeam(
			teamID, donationID, []kernel.UUID{v1}, v1,
			validSchedule(t), validSchedule(t))

		require.NoError(t, err)
		assert.Len(t, team.Volunteers(), 1)
	})

	t.Run("should fail without volunteers", func(t *testing.T) {
		team, err := donation.NewTeam(
			teamID, donationID, nil, v1,
			validSchedule(t), validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, team)
		assert.ErrorIs(t, err, donation.ErrVolunteersAreRequired)
	})

	t.Run("should fail with duplicate volunteers", func(t *testing.T) {
		team, err := donation.NewTeam(
			teamID, donationID, []kernel.UUID{v1, v1}, v1,
			validSchedule(t), validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, team)
		assert.Contains(t, err.Error(), "listed twice")
	})

	t.Run("should fail when leader is not a member", func(t *testing.T) {
		outsider := kernel.NewUUID()

		team, err := donation.NewTeam(
			teamID, donationID, []kernel.UUID{v1, v2}, outsider,
			validSchedule(t), validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, team)
		assert.ErrorIs(t, err, donation.ErrLeaderNotInTeam)
	})

	t.Run("should fail with unconstructed schedules", func(t *testing.T) {
		var zero donation.Schedule

		team, err := donation.NewTeam(
			teamID, donationID, []kernel.UUID{v1}, v1,
			zero, validSchedule(t))

		require.Error(t, err)
		assert.Nil(t, team)
	})
}

func TestTeam_Immutability(t *testing.T) {
	t.Run("mutating returned volunteers must not affect the team", func(t *testing.T) {
		v1 := kernel.NewUUID()
		team, err := donation.NewTeam(
			kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{v1}, v1,
			validSchedule(t), validSchedule(t))
		require.NoError(t, err)

		members := team.Volunteers()
		members[0] = kernel.NewUUID()

		assert.True(t, team.Volunteers()[0].IsEqual(v1))
	})
}
