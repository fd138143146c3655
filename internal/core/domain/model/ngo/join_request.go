package ngo

import (
	"errors"
	"fmt"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// ErrJoinRequestIsNotConstructed is returned when using an improperly initialized JoinRequest.
var ErrJoinRequestIsNotConstructed = errors.New("JoinRequest must be created via NewJoinRequest constructor")

// JoinRequestStatus is the lifecycle of a volunteer's request to join an NGO.
type JoinRequestStatus int

const (
	// JoinRequestStatusUnknown represents an invalid or undefined status.
	JoinRequestStatusUnknown JoinRequestStatus = iota

	// JoinRequestStatusPending awaits the NGO's decision.
	JoinRequestStatusPending

	// JoinRequestStatusAccepted means the volunteer was added to the roster.
	JoinRequestStatusAccepted

	// JoinRequestStatusRejected means the NGO declined.
	JoinRequestStatusRejected
)

func getJoinRequestStatusStrings() map[JoinRequestStatus]string {
	return map[JoinRequestStatus]string{
		JoinRequestStatusUnknown:  "Unknown",
		JoinRequestStatusPending:  "Pending",
		JoinRequestStatusAccepted: "Accepted",
		JoinRequestStatusRejected: "Rejected",
	}
}

// Validate checks if the JoinRequestStatus value is valid.
func (s JoinRequestStatus) Validate() error {
	if s != JoinRequestStatusPending && s != JoinRequestStatusAccepted && s != JoinRequestStatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("join request status",
			fmt.Errorf("%d is not a valid join request status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s JoinRequestStatus) String() string {
	if str, ok := getJoinRequestStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// JoinRequest is a volunteer's request to join an NGO's roster.
// Acceptance is idempotent: accepting an already-accepted request succeeds
// without mutating membership again.
type JoinRequest struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// ngoID is the NGO being asked
	ngoID kernel.UUID

	// volunteerID is the requesting volunteer
	volunteerID kernel.UUID

	// status is the current decision state
	status JoinRequestStatus

	// guard ensures the request was created via a constructor
	guard guard.ConstructorGuard
}

// NewJoinRequest creates a Pending join request.
func NewJoinRequest(id, ngoID, volunteerID kernel.UUID) (*JoinRequest, error) {
	r := &JoinRequest{
		status: JoinRequestStatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setNgoID(ngoID),
		r.setVolunteerID(volunteerID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreJoinRequest reconstructs a JoinRequest from persistent storage.
func RestoreJoinRequest(id, ngoID, volunteerID kernel.UUID, status JoinRequestStatus) (*JoinRequest, error) {
	r := &JoinRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setNgoID(ngoID),
		r.setVolunteerID(volunteerID),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the JoinRequest instance was properly constructed.
func (r *JoinRequest) Validate() error {
	if r == nil {
		return ErrJoinRequestIsNotConstructed
	}
	return r.guard.Validate(ErrJoinRequestIsNotConstructed)
}

// IsEqual compares two join requests by their unique identifiers.
func (r *JoinRequest) IsEqual(other *JoinRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *JoinRequest) ID() kernel.UUID {
	return r.id
}

// NgoID returns the NGO being asked.
func (r *JoinRequest) NgoID() kernel.UUID {
	return r.ngoID
}

// VolunteerID returns the requesting volunteer.
func (r *JoinRequest) VolunteerID() kernel.UUID {
	return r.volunteerID
}

// Status returns the current decision state.
func (r *JoinRequest) Status() JoinRequestStatus {
	return r.status
}

// Accept marks the request as accepted. Accepting an already-accepted
// request reports false (no transition happened) with no error, so callers
// can skip the membership mutation on retries. A Rejected request cannot be
// accepted.
func (r *JoinRequest) Accept() (bool, error) {
	switch r.status {
	case JoinRequestStatusAccepted:
		return false, nil
	case JoinRequestStatusPending:
		r.status = JoinRequestStatusAccepted
		return true, nil
	default:
		return false, errs.NewStateConflictError("join request", r.status.String())
	}
}

// Reject declines the request. Only a Pending request can be rejected.
func (r *JoinRequest) Reject() error {
	if r.status != JoinRequestStatusPending {
		return errs.NewStateConflictError("join request", r.status.String())
	}

	r.status = JoinRequestStatusRejected
	return nil
}

func (r *JoinRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *JoinRequest) setNgoID(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}
	r.ngoID = ngoID
	return nil
}

func (r *JoinRequest) setVolunteerID(volunteerID kernel.UUID) error {
	if err := volunteerID.Validate(); err != nil {
		return err
	}
	r.volunteerID = volunteerID
	return nil
}

func (r *JoinRequest) setStatus(status JoinRequestStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
