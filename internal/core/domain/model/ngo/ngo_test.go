package ngo_test

import (
	"testing"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/ngo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T) *ngo.Profile {
	t.Helper()
	p, err := ngo.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Food Rescue Trust")
	require.NoError(t, err)
	return p
}

func TestNewProfile(t *testing.T) {
	t.Run("should create valid profile with empty roster", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		p, err := ngo.NewProfile(id, userID, "Food Rescue Trust")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.UserID().IsEqual(userID))
		assert.Equal(t, "Food Rescue Trust", p.OrganizationName())
		assert.Empty(t, p.Volunteers())
		assert.Empty(t, p.DonationsHandled())
	})

	t.Run("should fail without organization name", func(t *testing.T) {
		_, err := ngo.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, ngo.ErrOrganizationNameIsRequired)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		_, err := ngo.NewProfile(kernel.UUID{}, kernel.NewUUID(), "Food Rescue Trust")

		require.Error(t, err)
	})

	t.Run("should fail validation for nil profile", func(t *testing.T) {
		var p *ngo.Profile

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, ngo.ErrProfileIsNotConstructed, err)
	})
}

func TestRestoreProfile(t *testing.T) {
	t.Run("should restore profile with roster and handled donations", func(t *testing.T) {
		volunteerID := kernel.NewUUID()
		donationID := kernel.NewUUID()

		p, err := ngo.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Food Rescue Trust",
			[]kernel.UUID{volunteerID}, []kernel.UUID{donationID})

		require.NoError(t, err)
		assert.True(t, p.HasVolunteer(volunteerID))
		assert.True(t, p.HasHandled(donationID))
	})

	t.Run("should dedupe volunteers and handled donations", func(t *testing.T) {
		volunteerID := kernel.NewUUID()
		donationID := kernel.NewUUID()

		p, err := ngo.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Food Rescue Trust",
			[]kernel.UUID{volunteerID, volunteerID},
			[]kernel.UUID{donationID, donationID, donationID})

		require.NoError(t, err)
		assert.Len(t, p.Volunteers(), 1)
		assert.Len(t, p.DonationsHandled(), 1)
	})

	t.Run("should fail with invalid roster entry", func(t *testing.T) {
		_, err := ngo.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Food Rescue Trust",
			[]kernel.UUID{{}}, nil)

		require.Error(t, err)
	})
}

func TestProfile_AddVolunteer(t *testing.T) {
	t.Run("should add volunteer to roster", func(t *testing.T) {
		p := newProfile(t)
		volunteerID := kernel.NewUUID()

		err := p.AddVolunteer(volunteerID)

		require.NoError(t, err)
		assert.True(t, p.HasVolunteer(volunteerID))
		assert.Len(t, p.Volunteers(), 1)
	})

	t.Run("should be idempotent for existing member", func(t *testing.T) {
		p := newProfile(t)
		volunteerID := kernel.NewUUID()
		require.NoError(t, p.AddVolunteer(volunteerID))

		err := p.AddVolunteer(volunteerID)

		require.NoError(t, err)
		assert.Len(t, p.Volunteers(), 1)
	})

	t.Run("should fail with invalid volunteer id", func(t *testing.T) {
		p := newProfile(t)

		err := p.AddVolunteer(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestProfile_RecordDonation(t *testing.T) {
	t.Run("should record handled donation", func(t *testing.T) {
		p := newProfile(t)
		donationID := kernel.NewUUID()

		err := p.RecordDonation(donationID)

		require.NoError(t, err)
		assert.True(t, p.HasHandled(donationID))
	})

	t.Run("should be idempotent for already recorded donation", func(t *testing.T) {
		p := newProfile(t)
		donationID := kernel.NewUUID()
		require.NoError(t, p.RecordDonation(donationID))

		err := p.RecordDonation(donationID)

		require.NoError(t, err)
		assert.Len(t, p.DonationsHandled(), 1)
	})
}

func TestProfile_Immutability(t *testing.T) {
	t.Run("should not expose internal roster slice", func(t *testing.T) {
		p := newProfile(t)
		volunteerID := kernel.NewUUID()
		require.NoError(t, p.AddVolunteer(volunteerID))

		roster := p.Volunteers()
		roster[0] = kernel.NewUUID()

		assert.True(t, p.HasVolunteer(volunteerID))
	})
}
