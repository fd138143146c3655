package donation

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"fooddonation/internal/pkg/errs"
	"fooddonation/internal/pkg/guard"
)

const (
	// otpDigits is the fixed length of the numeric confirmation code.
	otpDigits = 6
	// DefaultOTPTTL is how long an issued code stays valid.
	DefaultOTPTTL = 10 * time.Minute
)

// OTP verification errors. Expiry is evaluated lazily against the timestamp
// supplied by the caller; there is no background invalidation.
var (
	// ErrOTPIsNotConstructed is returned when using an improperly initialized OTP.
	ErrOTPIsNotConstructed = errors.New("OTP must be created via NewOTP or RestoreOTP")
	// ErrOTPExpired is returned when a code is submitted after its expiry time.
	ErrOTPExpired = errors.New("otp expired")
	// ErrOTPMismatch is returned when the submitted code does not match the stored one.
	ErrOTPMismatch = errors.New("otp mismatch")
)

// OTP is the one-time numeric code that confirms a physical pickup happened.
// It is an immutable value object holding the code and its expiry timestamp.
// The code is generated with crypto/rand and handed to an out-of-band delivery
// collaborator; this package only stores and verifies it.
type OTP struct { //nolint:recvcheck //using for validation
	code      string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewOTP generates a fresh fixed-length numeric code valid until now+ttl.
func NewOTP(now time.Time, ttl time.Duration) (OTP, error) {
	if ttl <= 0 {
		return OTP{}, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not a positive duration", ttl))
	}

	code, err := generateCode(otpDigits)
	if err != nil {
		return OTP{}, err
	}

	return OTP{
		code:      code,
		expiresAt: now.Add(ttl),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOTP reconstructs a stored OTP from persistence.
func RestoreOTP(code string, expiresAt time.Time) (OTP, error) {
	if code == "" {
		return OTP{}, errs.NewValueIsRequiredError("otp code")
	}
	if expiresAt.IsZero() {
		return OTP{}, errs.NewValueIsRequiredError("otp expiry")
	}

	return OTP{
		code:      code,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OTP was created through a constructor.
func (o OTP) Validate() error {
	return o.guard.Validate(ErrOTPIsNotConstructed)
}

// Code returns the numeric confirmation code.
func (o OTP) Code() string {
	return o.code
}

// ExpiresAt returns the instant after which the code is no longer accepted.
func (o OTP) ExpiresAt() time.Time {
	return o.expiresAt
}

// Verify checks a submitted code against the stored one at the given instant.
// Expiry is checked first; a stale code fails with ErrOTPExpired even when the
// digits match. A wrong code fails with ErrOTPMismatch.
func (o OTP) Verify(submitted string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if now.After(o.expiresAt) {
		return ErrOTPExpired
	}

	if submitted != o.code {
		return ErrOTPMismatch
	}

	return nil
}

// generateCode produces a zero-padded numeric string of the given length
// using a cryptographic source.
func generateCode(digits int) (string, error) {
	limit := big.NewInt(1)
	for range digits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
