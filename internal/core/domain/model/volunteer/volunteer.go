// Package volunteer contains the VolunteerProfile aggregate. A volunteer is
// assignable to at most one active pickup team at a time; the availability
// flag is the lock that enforces this, flipped under a compare-and-set by the
// persistence layer.
package volunteer

import (
	"errors"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// Domain errors for volunteer operations.
var (
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
	// ErrNotAvailable is returned when locking a volunteer who is already on an active team.
	ErrNotAvailable = errors.New("volunteer is not available")
)

// Profile is a volunteer's workflow state: whether they are free to join a
// pickup team and which NGO rosters they belong to.
//
// Invariants:
//   - isAvailable is false exactly while the volunteer is on an active
//     (non-completed) team
//   - joinedNGOs has no duplicates and mirrors NGOProfile.volunteers; the
//     two sides are only ever mutated together via the membership commands
type Profile struct {
	// id is the unique identifier for the profile
	id kernel.UUID

	// userID links to the volunteer's user account (1:1)
	userID kernel.UUID

	// name is the volunteer's display name
	name string

	// isAvailable is false while the volunteer is locked into an active team
	isAvailable bool

	// joinedNGOs are the NGOs whose rosters include this volunteer
	joinedNGOs []kernel.UUID

	// guard ensures the profile was created via a constructor
	guard guard.ConstructorGuard
}

// NewProfile creates an available volunteer profile with no memberships.
func NewProfile(id, userID kernel.UUID, name string) (*Profile, error) {
	p := &Profile{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a volunteer profile from persistent storage.
func RestoreProfile(id, userID kernel.UUID, name string, isAvailable bool, joinedNGOs []kernel.UUID) (*Profile, error) {
	p := &Profile{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setName(name),
		p.setJoinedNGOs(joinedNGOs),
	); err != nil {
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

// Name returns the volunteer's display name.
func (p *Profile) Name() string {
	return p.name
}

// IsAvailable reports whether the volunteer can join a new team.
func (p *Profile) IsAvailable() bool {
	return p.isAvailable
}

// JoinedNGOs returns a copy of the NGO identifiers the volunteer belongs to.
func (p *Profile) JoinedNGOs() []kernel.UUID {
	out := make([]kernel.UUID, len(p.joinedNGOs))
	copy(out, p.joinedNGOs)
	return out
}

// IsMemberOf reports whether the volunteer belongs to the given NGO's roster.
func (p *Profile) IsMemberOf(ngoID kernel.UUID) bool {
	for _, id := range p.joinedNGOs {
		if id.IsEqual(ngoID) {
			return true
		}
	}
	return false
}

// Lock marks the volunteer as busy with a team.
// Fails with ErrNotAvailable if they are already locked; the persistence
// layer additionally enforces this with a conditional update so two racing
// schedules cannot both win.
func (p *Profile) Lock() error {
	if !p.isAvailable {
		return ErrNotAvailable
	}

	p.isAvailable = false
	return nil
}

// Release marks the volunteer as available again. Releasing an already
// available volunteer is a no-op: each volunteer is on at most one active
// team, so the unlock at completion is unconditional and safe.
func (p *Profile) Release() {
	p.isAvailable = true
}

// JoinNGO adds the NGO to the volunteer's memberships as a set union:
// joining an NGO the volunteer already belongs to changes nothing.
func (p *Profile) JoinNGO(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}

	if p.IsMemberOf(ngoID) {
		return nil
	}

	p.joinedNGOs = append(p.joinedNGOs, ngoID)
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

func (p *Profile) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Profile) setJoinedNGOs(joinedNGOs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(joinedNGOs))
	for _, id := range joinedNGOs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		p.joinedNGOs = append(p.joinedNGOs, id)
	}
	return nil
}
