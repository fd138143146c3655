package volunteer_test

import (
	"testing"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/core/domain/model/volunteer"
	"fooddonation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T) *volunteer.Profile {
	t.Helper()
	p, err := volunteer.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "Asha")
	require.NoError(t, err)
	return p
}

func TestNewProfile(t *testing.T) {
	t.Run("should create available profile with no memberships", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		p, err := volunteer.NewProfile(id, userID, "Asha")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.UserID().IsEqual(userID))
		assert.Equal(t, "Asha", p.Name())
		assert.True(t, p.IsAvailable())
		assert.Empty(t, p.JoinedNGOs())
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := volunteer.NewProfile(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail validation for nil profile", func(t *testing.T) {
		var p *volunteer.Profile

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, volunteer.ErrProfileIsNotConstructed, err)
	})
}

func TestRestoreProfile(t *testing.T) {
	t.Run("should restore locked profile with memberships", func(t *testing.T) {
		ngoID := kernel.NewUUID()

		p, err := volunteer.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Asha", false, []kernel.UUID{ngoID})

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
		assert.True(t, p.IsMemberOf(ngoID))
	})

	t.Run("should dedupe memberships", func(t *testing.T) {
		ngoID := kernel.NewUUID()

		p, err := volunteer.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Asha", true,
			[]kernel.UUID{ngoID, ngoID})

		require.NoError(t, err)
		assert.Len(t, p.JoinedNGOs(), 1)
	})

	t.Run("should fail with invalid membership id", func(t *testing.T) {
		_, err := volunteer.RestoreProfile(
			kernel.NewUUID(), kernel.NewUUID(), "Asha", true, []kernel.UUID{{}})

		require.Error(t, err)
	})
}

func TestProfile_Lock(t *testing.T) {
	t.Run("should lock available volunteer", func(t *testing.T) {
		p := newProfile(t)

		err := p.Lock()

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
	})

	t.Run("should fail to lock twice", func(t *testing.T) {
		p := newProfile(t)
		require.NoError(t, p.Lock())

		err := p.Lock()

		require.Error(t, err)
		assert.ErrorIs(t, err, volunteer.ErrNotAvailable)
		assert.False(t, p.IsAvailable())
	})
}

func TestProfile_Release(t *testing.T) {
	t.Run("should release locked volunteer", func(t *testing.T) {
		p := newProfile(t)
		require.NoError(t, p.Lock())

		p.Release()

		assert.True(t, p.IsAvailable())
	})

	t.Run("should be a no-op for available volunteer", func(t *testing.T) {
		p := newProfile(t)

		p.Release()

		assert.True(t, p.IsAvailable())
	})
}

func TestProfile_JoinNGO(t *testing.T) {
	t.Run("should add membership", func(t *testing.T) {
		p := newProfile(t)
		ngoID := kernel.NewUUID()

		err := p.JoinNGO(ngoID)

		require.NoError(t, err)
		assert.True(t, p.IsMemberOf(ngoID))
		assert.Len(t, p.JoinedNGOs(), 1)
	})

	t.Run("should be idempotent for existing membership", func(t *testing.T) {
		p := newProfile(t)
		ngoID := kernel.NewUUID()
		require.NoError(t, p.JoinNGO(ngoID))

		err := p.JoinNGO(ngoID)

		require.NoError(t, err)
		assert.Len(t, p.JoinedNGOs(), 1)
	})

	t.Run("should fail with invalid ngo id", func(t *testing.T) {
		p := newProfile(t)

		err := p.JoinNGO(kernel.UUID{})

		require.Error(t, err)
		assert.Empty(t, p.JoinedNGOs())
	})
}
