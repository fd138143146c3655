package account_test

import (
	"testing"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("valid roles pass validation", func(t *testing.T) {
		for _, role := range []account.Role{account.RoleDonor, account.RoleNGO, account.RoleVolunteer} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		require.ErrorIs(t, account.RoleUnknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Donor", account.RoleDonor.String())
		assert.Equal(t, "NGO", account.RoleNGO.String())
		assert.Equal(t, "Volunteer", account.RoleVolunteer.String())
		assert.Equal(t, "Unknown", account.RoleUnknown.String())
	})

	t.Run("parses from string", func(t *testing.T) {
		role, err := account.RoleFromString("NGO")
		require.NoError(t, err)
		assert.Equal(t, account.RoleNGO, role)
	})

	t.Run("rejects unknown string", func(t *testing.T) {
		_, err := account.RoleFromString("Admin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("creates valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := account.NewActor(id, account.RoleDonor)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, account.RoleDonor, actor.Role())
	})

	t.Run("rejects zero UUID", func(t *testing.T) {
		var id kernel.UUID

		_, err := account.NewActor(id, account.RoleDonor)

		require.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.RoleUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor account.Actor

		require.ErrorIs(t, actor.Validate(), account.ErrActorIsNotConstructed)
	})
}

func TestActorRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		actor, _ := account.NewActor(kernel.NewUUID(), account.RoleNGO)

		require.NoError(t, actor.RequireRole(account.RoleNGO))
	})

	t.Run("mismatched role is not authorized", func(t *testing.T) {
		actor, _ := account.NewActor(kernel.NewUUID(), account.RoleVolunteer)

		err := actor.RequireRole(account.RoleNGO)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Contains(t, err.Error(), "role is Volunteer, want NGO")
	})
}
