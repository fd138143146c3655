package donation

import (
	"errors"
	"fmt"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned when using an improperly initialized Request.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// RequestStatus is the lifecycle of an NGO's claim on a donation.
// A request starts Pending. The donor approves at most one request per
// donation; approval rejects every competing Pending request.
type RequestStatus int

const (
	// RequestStatusUnknown represents an invalid or undefined request status.
	RequestStatusUnknown RequestStatus = iota

	// RequestStatusPending awaits the donor's decision.
	RequestStatusPending

	// RequestStatusApproved is the single winning claim on a donation.
	RequestStatusApproved

	// RequestStatusRejected marks a claim the donor declined, or one that
	// lost to a competing approval.
	RequestStatusRejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown:  "Unknown",
		RequestStatusPending:  "Pending",
		RequestStatusApproved: "Approved",
		RequestStatusRejected: "Rejected",
	}
}

// Validate checks if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	if s != RequestStatusPending && s != RequestStatusApproved && s != RequestStatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("request status",
			fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// String returns the human-readable name of the request status.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Request is an NGO's claim offer on a donation, owned by the donation it
// references. The donor approves or rejects it; approval of one request
// rejects all of its competitors in the same transaction.
type Request struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// donationID is the donation being claimed
	donationID kernel.UUID

	// ngoID is the claiming NGO
	ngoID kernel.UUID

	// message is the NGO's note to the donor
	message string

	// status is the current decision state
	status RequestStatus

	// guard ensures the request was created via a constructor
	guard guard.ConstructorGuard
}

// NewRequest creates a Pending claim request.
// The message is required; the original flow always carries one.
func NewRequest(id, donationID, ngoID kernel.UUID, message string) (*Request, error) {
	r := &Request{
		status: RequestStatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDonationID(donationID),
		r.setNgoID(ngoID),
		r.setMessage(message),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a Request from persistent storage.
func RestoreRequest(id, donationID, ngoID kernel.UUID, message string, status RequestStatus) (*Request, error) {
	r := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDonationID(donationID),
		r.setNgoID(ngoID),
		r.setMessage(message),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// DonationID returns the claimed donation's identifier.
func (r *Request) DonationID() kernel.UUID {
	return r.donationID
}

// NgoID returns the claiming NGO's identifier.
func (r *Request) NgoID() kernel.UUID {
	return r.ngoID
}

// Message returns the NGO's note to the donor.
func (r *Request) Message() string {
	return r.message
}

// Status returns the current decision state.
func (r *Request) Status() RequestStatus {
	return r.status
}

// Approve marks the request as the winning claim.
// Only a Pending request can be approved.
func (r *Request) Approve() error {
	if r.status != RequestStatusPending {
		return errs.NewStateConflictError("donation request", r.status.String())
	}

	r.status = RequestStatusApproved
	return nil
}

// Reject declines the claim. Rejecting an already-rejected request is a
// no-op so competitor sweeps stay idempotent; an Approved request cannot
// be rejected.
func (r *Request) Reject() error {
	if r.status == RequestStatusRejected {
		return nil
	}
	if r.status != RequestStatusPending {
		return errs.NewStateConflictError("donation request", r.status.String())
	}

	r.status = RequestStatusRejected
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}
	r.donationID = donationID
	return nil
}

func (r *Request) setNgoID(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}
	r.ngoID = ngoID
	return nil
}

func (r *Request) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	r.message = message
	return nil
}

func (r *Request) setStatus(status RequestStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
