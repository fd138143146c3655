// Package ngo contains the NGOProfile aggregate and the JoinRequest a
// volunteer submits to enter an NGO's roster. The roster and the volunteer's
// joinedNGOs list are two views of one relation; both sides are mutated with
// idempotent set unions inside a single membership transaction.
package ngo

import (
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// Domain errors for NGO operations.
var (
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
	// ErrOrganizationNameIsRequired is returned when creating a profile without a name.
	ErrOrganizationNameIsRequired = errs.NewValueIsRequiredError("organization name")
)

// Profile is an NGO's workflow state: the volunteer roster it can draw pickup
// teams from and the donations it has been assigned over time.
type Profile struct {
	// id is the unique identifier for the profile
	id kernel.UUID

	// userID links to the NGO's user account (1:1)
	userID kernel.UUID

	// organizationName is the NGO's registered name
	organizationName string

	// volunteers is the duplicate-free roster of member volunteers
	volunteers []kernel.UUID

	// donationsHandled are the donations ever assigned to this NGO
	donationsHandled []kernel.UUID

	// guard ensures the profile was created via a constructor
	guard guard.ConstructorGuard
}

// NewProfile creates an NGO profile with an empty roster.
func NewProfile(id, userID kernel.UUID, organizationName string) (*Profile, error) {
	p := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setOrganizationName(organizationName),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs an NGO profile from persistent storage.
func RestoreProfile(
	id, userID kernel.UUID,
	organizationName string,
	volunteers []kernel.UUID,
	donationsHandled []kernel.UUID,
) (*Profile, error) {
	p := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setOrganizationName(organizationName),
	); err != nil {
		return nil, err
	}

	var err error
	if p.volunteers, err = dedupe(volunteers); err != nil {
		return nil, err
	}
	if p.donationsHandled, err = dedupe(donationsHandled); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Profile instance was properly constructed.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// IsEqual compares two profiles by their unique identifiers.
func (p *Profile) IsEqual(other *Profile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// UserID returns the linked user account identifier.
func (p *Profile) UserID() kernel.UUID {
	return p.userID
}

// OrganizationName returns the NGO's registered name.
func (p *Profile) OrganizationName() string {
	return p.organizationName
}

// Volunteers returns a copy of the roster.
func (p *Profile) Volunteers() []kernel.UUID {
	out := make([]kernel.UUID, len(p.volunteers))
	copy(out, p.volunteers)
	return out
}

// DonationsHandled returns a copy of the donations assigned to this NGO.
func (p *Profile) DonationsHandled() []kernel.UUID {
	out := make([]kernel.UUID, len(p.donationsHandled))
	copy(out, p.donationsHandled)
	return out
}

// HasVolunteer reports whether the volunteer is on the roster.
func (p *Profile) HasVolunteer(volunteerID kernel.UUID) bool {
	return contains(p.volunteers, volunteerID)
}

// HasHandled reports whether the donation was ever assigned to this NGO.
func (p *Profile) HasHandled(donationID kernel.UUID) bool {
	return contains(p.donationsHandled, donationID)
}

// AddVolunteer adds a volunteer to the roster as a set union: adding an
// existing member changes nothing. The roster only ever grows through the
// membership commands, which mutate the volunteer's side in the same
// transaction.
func (p *Profile) AddVolunteer(volunteerID kernel.UUID) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}

	if contains(p.volunteers, volunteerID) {
		return nil
	}

	p.volunteers = append(p.volunteers, volunteerID)
	return nil
}

// RecordDonation adds a donation to donationsHandled as a set union, so a
// retried approval never records the same donation twice.
func (p *Profile) RecordDonation(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	if contains(p.donationsHandled, donationID) {
		return nil
	}

	p.donationsHandled = append(p.donationsHandled, donationID)
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

func (p *Profile) setOrganizationName(name string) error {
	if name == "" {
		return ErrOrganizationNameIsRequired
	}
	p.organizationName = name
	return nil
}

func contains(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}

func dedupe(ids []kernel.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
