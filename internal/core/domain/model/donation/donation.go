package donation

import (
	"errors"
	"time"

	"fooddonation/internal/core/domain/model/kernel"
	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

// maxPeopleFed bounds the donor's serving estimate.
const maxPeopleFed = 100000

// Domain errors for donation operations.
var (
	// ErrDonationIsNotConstructed is returned when using an improperly initialized Donation.
	ErrDonationIsNotConstructed = errors.New("Donation must be created via NewDonation constructor")
	// ErrTitleIsRequired is returned when attempting to create a donation without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrItemsAreRequired is returned when attempting to create a donation without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOTPNotIssued is returned when verifying a code on a donation that has none stored.
	ErrOTPNotIssued = errors.New("no otp issued for donation")
	// ErrProofIsRequired is returned when completing a donation without proof images.
	ErrProofIsRequired = errs.NewValueIsRequiredError("proof images")
)

// Donation is the aggregate root of the workflow: one posted surplus-food
// offer tracked from posting through assignment, scheduling, pickup, and
// completion.
//
// Donation enforces these invariants:
//   - Status moves strictly forward: New→Assigned→Scheduled→Picked→Completed.
//     Out-of-order operations fail with a state conflict and mutate nothing.
//   - The assigned NGO is set exactly once, when the status becomes Assigned.
//   - An OTP exists only between issuance (while Scheduled) and successful
//     verification; a matching code clears it and transitions to Picked.
//   - Proof images are recorded exactly once, at completion.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Persistence reconstructs instances via
// RestoreDonation, which also remembers the loaded status so repositories can
// issue conditional (compare-and-set) updates.
type Donation struct {
	// id is the unique identifier for the donation
	id kernel.UUID

	// donorID is the posting donor; ownership checks compare against it
	donorID kernel.UUID

	// title is the donor-facing summary, e.g. "Wedding leftovers"
	title string

	// items are the donated food lines (at least one)
	items []Item

	// peopleFed is the donor's estimate of how many people the food serves
	peopleFed int

	// pickupAddress is the human-readable pickup address
	pickupAddress string

	// pickupPoint is the pickup coordinate for the volunteer team
	pickupPoint kernel.GeoPoint

	// status is the current state in the donation lifecycle
	status Status

	// loadedStatus is the status the aggregate was restored with; it is the
	// expected value for conditional updates and never changes in memory
	loadedStatus Status

	// assignedNgoID is the NGO whose claim the donor approved (nil before that)
	assignedNgoID *kernel.UUID

	// otp is the pending pickup confirmation code (nil unless issued)
	otp *OTP

	// proofImages are opaque references to completion proof
	proofImages []string

	// guard ensures the donation was created via a constructor
	guard guard.ConstructorGuard
}

// NewDonation creates a donation in status New.
// The donor identifier, title, at least one valid item, and a valid pickup
// point are required; peopleFed must not be negative.
func NewDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	title string,
	items []Item,
	peopleFed int,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
) (*Donation, error) {
	d := &Donation{
		status:       StatusNew,
		loadedStatus: StatusNew,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonorID(donorID),
		d.setTitle(title),
		d.setItems(items),
		d.setPeopleFed(peopleFed),
		d.setPickupAddress(pickupAddress),
		d.setPickupPoint(pickupPoint),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDonation reconstructs a Donation aggregate from persistent storage.
// Unlike NewDonation, this accepts any valid status along with the assignment,
// OTP, and proof state persisted with it. The given status also becomes the
// aggregate's loaded status, which repositories use as the expected value in
// conditional updates so concurrent transitions produce exactly one winner.
func RestoreDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	title string,
	items []Item,
	peopleFed int,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	status Status,
	assignedNgoID *kernel.UUID,
	otp *OTP,
	proofImages []string,
) (*Donation, error) {
	d := &Donation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonorID(donorID),
		d.setTitle(title),
		d.setItems(items),
		d.setPeopleFed(peopleFed),
		d.setPickupAddress(pickupAddress),
		d.setPickupPoint(pickupPoint),
		d.setStatus(status),
		d.setAssignedNgoID(assignedNgoID),
		d.setOTP(otp),
	); err != nil {
		return nil, err
	}

	d.loadedStatus = status
	d.proofImages = append([]string(nil), proofImages...)
	return d, nil
}

// Validate ensures the Donation instance was properly constructed.
func (d *Donation) Validate() error {
	if d == nil {
		return ErrDonationIsNotConstructed
	}
	return d.guard.Validate(ErrDonationIsNotConstructed)
}

// IsEqual compares two donations by their unique identifiers.
func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the donation's unique identifier.
func (d *Donation) ID() kernel.UUID {
	return d.id
}

// DonorID returns the identifier of the donor who posted the donation.
func (d *Donation) DonorID() kernel.UUID {
	return d.donorID
}

// Title returns the donor-facing summary of the donation.
func (d *Donation) Title() string {
	return d.title
}

// Items returns a copy of the donated food lines.
func (d *Donation) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

// PeopleFed returns the donor's estimate of how many people the food serves.
func (d *Donation) PeopleFed() int {
	return d.peopleFed
}

// PickupAddress returns the human-readable pickup address.
func (d *Donation) PickupAddress() string {
	return d.pickupAddress
}

// PickupPoint returns the pickup coordinate.
func (d *Donation) PickupPoint() kernel.GeoPoint {
	return d.pickupPoint
}

// Status returns the current status of the donation.
func (d *Donation) Status() Status {
	return d.status
}

// LoadedStatus returns the status the aggregate was loaded with.
// Repositories use it as the expected current value when persisting a
// transition, turning every status write into a compare-and-set.
func (d *Donation) LoadedStatus() Status {
	return d.loadedStatus
}

// AssignedNgoID returns the approved NGO's identifier, or nil before approval.
func (d *Donation) AssignedNgoID() *kernel.UUID {
	return d.assignedNgoID
}

// OTP returns the pending pickup confirmation code, or nil if none is issued.
func (d *Donation) OTP() *OTP {
	return d.otp
}

// ProofImages returns a copy of the stored completion proof references.
func (d *Donation) ProofImages() []string {
	out := make([]string, len(d.proofImages))
	copy(out, d.proofImages)
	return out
}

// IsOwnedBy reports whether the given user posted this donation.
func (d *Donation) IsOwnedBy(userID kernel.UUID) bool {
	return d.donorID.IsEqual(userID)
}

// Assign records the donor's approval of an NGO's claim and transitions the
// donation to Assigned. The NGO identifier is set exactly here and never
// changes afterwards; any status other than New is a state conflict.
func (d *Donation) Assign(ngoID kernel.UUID) error {
	if err := ngoID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.assignedNgoID = &ngoID
	return nil
}

// Schedule transitions the donation to Scheduled once a pickup team has been
// formed. Team validation and volunteer locking happen outside the aggregate;
// this only enforces the Assigned→Scheduled transition.
func (d *Donation) Schedule() error {
	newStatus, err := d.status.Schedule()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// IssueOTP generates and stores a pickup confirmation code valid until
// now+ttl, replacing any previously issued code (last code wins). The
// donation must be Scheduled. The returned OTP is handed to the out-of-band
// delivery collaborator; the status does not change.
func (d *Donation) IssueOTP(now time.Time, ttl time.Duration) (OTP, error) {
	if d.status != StatusScheduled {
		return OTP{}, errs.NewStateConflictError("donation", d.status.String())
	}

	otp, err := NewOTP(now, ttl)
	if err != nil {
		return OTP{}, err
	}

	d.otp = &otp
	return otp, nil
}

// VerifyOTP checks a submitted code at the given instant. On match the stored
// code is cleared and the donation transitions to Picked, so a second verify
// with the same code fails with ErrOTPNotIssued.
//
// Failure modes, checked in order:
//   - ErrOTPNotIssued when no code is stored
//   - ErrOTPExpired when now is past the code's expiry (status unchanged)
//   - ErrOTPMismatch when the digits differ (status unchanged)
func (d *Donation) VerifyOTP(submitted string, now time.Time) error {
	if d.otp == nil {
		return ErrOTPNotIssued
	}

	if err := d.otp.Verify(submitted, now); err != nil {
		return err
	}

	newStatus, err := d.status.Pick()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.otp = nil
	return nil
}

// Complete records delivery proof and transitions the donation to Completed,
// the terminal state. At least one proof reference is required. Releasing the
// team volunteers is the caller's responsibility.
func (d *Donation) Complete(proofImages []string) error {
	if len(proofImages) == 0 {
		return ErrProofIsRequired
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.proofImages = append([]string(nil), proofImages...)
	return nil
}

func (d *Donation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Donation) setDonorID(donorID kernel.UUID) error {
	if err := donorID.Validate(); err != nil {
		return err
	}
	d.donorID = donorID
	return nil
}

func (d *Donation) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	d.title = title
	return nil
}

func (d *Donation) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	d.items = make([]Item, len(items))
	copy(d.items, items)
	return nil
}

func (d *Donation) setPeopleFed(peopleFed int) error {
	if peopleFed < 0 || peopleFed > maxPeopleFed {
		return errs.NewValueIsOutOfRangeError("peopleFed", peopleFed, 0, maxPeopleFed)
	}
	d.peopleFed = peopleFed
	return nil
}

func (d *Donation) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	d.pickupAddress = address
	return nil
}

func (d *Donation) setPickupPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	d.pickupPoint = point
	return nil
}

func (d *Donation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Donation) setAssignedNgoID(ngoID *kernel.UUID) error {
	if ngoID == nil {
		return nil
	}
	if err := ngoID.Validate(); err != nil {
		return err
	}
	d.assignedNgoID = ngoID
	return nil
}

func (d *Donation) setOTP(otp *OTP) error {
	if otp == nil {
		return nil
	}
	if err := otp.Validate(); err != nil {
		return err
	}
	d.otp = otp
	return nil
}
