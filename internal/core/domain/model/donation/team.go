package donation

import (
	"errors"
	"fmt"
	"time"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// Domain errors for team operations.
var (
	// ErrTeamIsNotConstructed is returned when using an improperly initialized Team.
	ErrTeamIsNotConstructed = errors.New("Team must be created via NewTeam constructor")
	// ErrScheduleIsNotConstructed is returned when using an improperly initialized Schedule.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")
	// ErrVolunteersAreRequired is returned when forming a team without volunteers.
	ErrVolunteersAreRequired = errs.NewValueIsRequiredError("volunteers")
	// ErrLeaderNotInTeam is returned when the designated leader is not one of the team volunteers.
	ErrLeaderNotInTeam = errs.NewValueIsInvalidError("leader must be a member of the team")
)

// Schedule is a planned time slot: when the team should arrive and,
// for deliveries, where the food goes afterwards.
type Schedule struct { //nolint:recvcheck //using for validation
	at       time.Time
	location string

	guard guard.ConstructorGuard
}

// NewSchedule creates a schedule for the given instant.
// The location is optional; pickups reuse the donation's own address.
func NewSchedule(at time.Time, location string) (Schedule, error) {
	if at.IsZero() {
		return Schedule{}, errs.NewValueIsRequiredError("schedule time")
	}

	return Schedule{
		at:       at,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Schedule was created through NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// At returns the planned instant.
func (s Schedule) At() time.Time {
	return s.at
}

// Location returns the planned destination, empty for pickups.
func (s Schedule) Location() string {
	return s.location
}

// Team is the volunteer group scheduled to execute one donation's pickup and
// delivery. A donation has at most one active team; its volunteers are locked
// (unavailable) for the team's whole lifetime and released at completion.
//
// Invariants:
//   - At least one volunteer, with no duplicates
//   - The leader is one of the volunteers
type Team struct {
	// id is the unique identifier for the team
	id kernel.UUID

	// donationID is the donation this team executes
	donationID kernel.UUID

	// volunteers are the member identifiers (no duplicates)
	volunteers []kernel.UUID

	// leaderID is the responsible member, always present in volunteers
	leaderID kernel.UUID

	// pickupSchedule is when the team collects the food
	pickupSchedule Schedule

	// deliverySchedule is when and where the food is dropped off
	deliverySchedule Schedule

	// guard ensures the team was created via a constructor
	guard guard.ConstructorGuard
}

// NewTeam forms a pickup/delivery team for a donation.
// The volunteer set must be non-empty and duplicate-free, and the leader must
// be one of the volunteers.
func NewTeam(
	id kernel.UUID,
	donationID kernel.UUID,
	volunteers []kernel.UUID,
	leaderID kernel.UUID,
	pickupSchedule Schedule,
	deliverySchedule Schedule,
) (*Team, error) {
	t := &Team{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setDonationID(donationID),
		t.setVolunteers(volunteers),
		t.setPickupSchedule(pickupSchedule),
		t.setDeliverySchedule(deliverySchedule),
	); err != nil {
		return nil, err
	}

	if err := t.setLeaderID(leaderID); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTeam reconstructs a Team from persistent storage.
func RestoreTeam(
	id kernel.UUID,
	donationID kernel.UUID,
	volunteers []kernel.UUID,
	leaderID kernel.UUID,
	pickupSchedule Schedule,
	deliverySchedule Schedule,
) (*Team, error) {
	return NewTeam(id, donationID, volunteers, leaderID, pickupSchedule, deliverySchedule)
}

// Validate ensures the Team instance was properly constructed.
func (t *Team) Validate() error {
	if t == nil {
		return ErrTeamIsNotConstructed
	}
	return t.guard.Validate(ErrTeamIsNotConstructed)
}

// IsEqual compares two teams by their unique identifiers.
func (t *Team) IsEqual(other *Team) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the team's unique identifier.
func (t *Team) ID() kernel.UUID {
	return t.id
}

// DonationID returns the donation this team executes.
func (t *Team) DonationID() kernel.UUID {
	return t.donationID
}

// Volunteers returns a copy of the member identifiers.
func (t *Team) Volunteers() []kernel.UUID {
	out := make([]kernel.UUID, len(t.volunteers))
	copy(out, t.volunteers)
	return out
}

// LeaderID returns the responsible member's identifier.
func (t *Team) LeaderID() kernel.UUID {
	return t.leaderID
}

// PickupSchedule returns when the team collects the food.
func (t *Team) PickupSchedule() Schedule {
	return t.pickupSchedule
}

// DeliverySchedule returns when and where the food is dropped off.
func (t *Team) DeliverySchedule() Schedule {
	return t.deliverySchedule
}

// HasVolunteer reports whether the given volunteer is a team member.
func (t *Team) HasVolunteer(volunteerID kernel.UUID) bool {
	for _, v := range t.volunteers {
		if v.IsEqual(volunteerID) {
			return true
		}
	}
	return false
}

func (t *Team) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Team) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	t.donationID = donationID
	return nil
}

func (t *Team) setVolunteers(volunteers []kernel.UUID) error {
	if len(volunteers) == 0 {
		return ErrVolunteersAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(volunteers))
	for _, v := range volunteers {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, ok := seen[v]; ok {
			return errs.NewValueIsInvalidErrorWithCause("volunteers",
				fmt.Errorf("volunteer %s listed twice", v))
		}
		seen[v] = struct{}{}
	}

	t.volunteers = make([]kernel.UUID, len(volunteers))
	copy(t.volunteers, volunteers)
	return nil
}

func (t *Team) setLeaderID(leaderID kernel.UUID) error {
	if err := leaderID.Validate(); err != nil {
		return err
	}
	if !t.HasVolunteer(leaderID) {
		return ErrLeaderNotInTeam
	}

	t.leaderID = leaderID
	return nil
}

func (t *Team) setPickupSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	t.pickupSchedule = schedule
	return nil
}

func (t *Team) setDeliverySchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	t.deliverySchedule = schedule
	return nil
}
