package donation

import (
	"fmt"

	"fooddonation/internal/pkg/errs"
)

// Status represents the lifecycle state of a donation.
// It implements a strictly forward state machine: every donation moves along
//
//	New ──> Assigned ──> Scheduled ──> Picked ──> Completed
//
// and never backwards. Each transition is caused by exactly one operation:
// approving a claim request (New→Assigned), scheduling a pickup team
// (Assigned→Scheduled), verifying the pickup OTP (Scheduled→Picked), and
// recording completion proof (Picked→Completed). Completed is terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when a donor posts a donation.
	// Donations in this status accept claim requests from NGOs.
	StatusNew

	// StatusAssigned indicates a donor approved one NGO's claim.
	// The assigned NGO may now schedule a pickup team.
	StatusAssigned

	// StatusScheduled indicates a pickup team has been formed and the
	// team volunteers are locked. The donation awaits OTP confirmation.
	StatusScheduled

	// StatusPicked indicates physical pickup was confirmed via OTP.
	StatusPicked

	// StatusCompleted indicates delivery proof has been recorded and the
	// team volunteers were released. This is the terminal state.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusNew:       "New",
		StatusAssigned:  "Assigned",
		StatusScheduled: "Scheduled",
		StatusPicked:    "Picked",
		StatusCompleted: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:       "New",
		StatusAssigned:  "Assigned",
		StatusScheduled: "Scheduled",
		StatusPicked:    "Picked",
		StatusCompleted: "Completed",
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are New, Assigned, Scheduled, Picked, and Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned.
// Only valid from New; any other source state is a state conflict.
func (s Status) Assign() (Status, error) {
	if s != StatusNew {
		return 0, errs.NewStateConflictError("donation", s.String())
	}
	return StatusAssigned, nil
}

// Schedule transitions the status to Scheduled.
// Only valid from Assigned.
func (s Status) Schedule() (Status, error) {
	if s != StatusAssigned {
		return 0, errs.NewStateConflictError("donation", s.String())
	}
	return StatusScheduled, nil
}

// Pick transitions the status to Picked.
// Only valid from Scheduled.
func (s Status) Pick() (Status, error) {
	if s != StatusScheduled {
		return 0, errs.NewStateConflictError("donation", s.String())
	}
	return StatusPicked, nil
}

// Complete transitions the status to Completed, the terminal state.
// Only valid from Picked.
func (s Status) Complete() (Status, error) {
	if s != StatusPicked {
		return 0, errs.NewStateConflictError("donation", s.String())
	}
	return StatusCompleted, nil
}
