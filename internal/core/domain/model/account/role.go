// Package account holds the identity value objects supplied by the external
// authentication collaborator: the actor invoking an operation and their role.
// No credential or session handling lives here.
package account

import (
	"fmt"

	"fooddonation/internal/pkg/errs"
)

// Role classifies the parties in the donation workflow. Every operation is
// restricted to one role; the role is resolved by the authentication
// collaborator and is immutable for the lifetime of a user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleDonor posts surplus food and approves claim requests.
	RoleDonor

	// RoleNGO claims donations, schedules pickups, and manages volunteers.
	RoleNGO

	// RoleVolunteer executes pickups as part of a donation team.
	RoleVolunteer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleDonor:     "Donor",
		RoleNGO:       "NGO",
		RoleVolunteer: "Volunteer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleDonor:     "Donor",
		RoleNGO:       "NGO",
		RoleVolunteer: "Volunteer",
	}
}

// RoleFromString parses the persisted/wire representation of a role.
// Accepts exactly "Donor", "NGO", or "Volunteer".
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are Donor, NGO, and Volunteer.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
