package shipment

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

const (
	// MinOTPDigits is the smallest allowed code width.
	MinOTPDigits = 4
	// MaxOTPDigits is the largest allowed code width that still fits the
	// generation range comfortably in an int.
	MaxOTPDigits = 9

	// DefaultOTPDigits matches the original 4-digit 1000-9999 range.
	DefaultOTPDigits = 4
	// DefaultOTPTTL is the default validity window of an issued code.
	DefaultOTPTTL = 2 * time.Minute

	// retentionTTLs scales the validity window into the retention window
	// for lapsed codes.
	retentionTTLs = 15
)

// ErrOTPIsNotConstructed is returned when an OTP instance was not created
// through NewOTP or GenerateOTP.
var ErrOTPIsNotConstructed = errs.NewValueIsRequiredError("OTP must be created via NewOTP or GenerateOTP")

// OTPPolicy configures code generation: how many digits a code has and how
// long it stays valid. The policy is passed into the issuing use case at
// construction time rather than read from globals.
type OTPPolicy struct {
	digits int
	ttl    time.Duration

	guard guard.ConstructorGuard
}

// NewOTPPolicy creates a generation policy with the given code width and
// validity window. Digits must be within [MinOTPDigits, MaxOTPDigits] and
// ttl must be positive.
func NewOTPPolicy(digits int, ttl time.Duration) (OTPPolicy, error) {
	if digits < MinOTPDigits || digits > MaxOTPDigits {
		return OTPPolicy{}, errs.NewValueIsOutOfRangeError("digits", digits, MinOTPDigits, MaxOTPDigits)
	}
	if ttl <= 0 {
		return OTPPolicy{}, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not a positive duration", ttl))
	}

	return OTPPolicy{digits: digits, ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

// DefaultOTPPolicy returns the policy inherited from the original system:
// 4-digit codes valid for 2 minutes.
func DefaultOTPPolicy() OTPPolicy {
	policy, err := NewOTPPolicy(DefaultOTPDigits, DefaultOTPTTL)
	if err != nil {
		panic(err) // defaults are compile-time constants within range
	}
	return policy
}

// Digits returns the configured code width.
func (p OTPPolicy) Digits() int {
	return p.digits
}

// TTL returns the configured validity window.
func (p OTPPolicy) TTL() time.Duration {
	return p.ttl
}

// RetentionWindow returns how long a lapsed code is kept in storage before
// cleanup may remove it. A lapsed code within the window still reads as
// expired on confirmation, not as invalid. With the default policy the
// window is 30 minutes.
func (p OTPPolicy) RetentionWindow() time.Duration {
	return p.ttl * retentionTTLs
}

// Validate ensures the policy was created through NewOTPPolicy.
func (p OTPPolicy) Validate() error {
	return p.guard.Validate(errs.NewValueIsRequiredError("OTPPolicy must be created via NewOTPPolicy"))
}

// OTP is a value object pairing a numeric one-time code with its expiry.
// The pairing enforces the invariant that a code and its expiry are either
// both present or both absent on a shipment.
//
// Comparison is a raw string equality check; the narrow keyspace makes this
// a deliberately low-security design inherited from the source system.
type OTP struct {
	code      string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewOTP creates an OTP from an existing code and expiry, typically when
// reconstructing a shipment from persistence. The code must be a non-empty
// string of decimal digits and the expiry must be set.
func NewOTP(code string, expiresAt time.Time) (OTP, error) {
	if code == "" {
		return OTP{}, errs.NewValueIsRequiredError("code")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return OTP{}, errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q is not a numeric code", code))
		}
	}
	if expiresAt.IsZero() {
		return OTP{}, errs.NewValueIsRequiredError("expiresAt")
	}

	return OTP{code: code, expiresAt: expiresAt, guard: guard.NewConstructorGuard()}, nil
}

// GenerateOTP mints a fresh code according to the policy. The code is drawn
// uniformly from the fixed-width range (for 4 digits: 1000-9999 inclusive)
// and expires policy.TTL after now.
func GenerateOTP(policy OTPPolicy, now time.Time) (OTP, error) {
	if err := policy.Validate(); err != nil {
		return OTP{}, err
	}

	low := 1
	for range policy.Digits() - 1 {
		low *= 10
	}

	code := strconv.Itoa(low + rand.IntN(9*low)) //nolint:gosec // short-lived numeric code, not key material
	return NewOTP(code, now.Add(policy.TTL()))
}

// Code returns the numeric code string.
func (o OTP) Code() string {
	return o.code
}

// ExpiresAt returns the instant after which the code is no longer valid.
func (o OTP) ExpiresAt() time.Time {
	return o.expiresAt
}

// Matches reports whether the presented code exactly equals the stored one.
// No normalization is applied.
func (o OTP) Matches(presented string) bool {
	return o.code == presented
}

// IsExpiredAt reports whether the code is stale at the given instant.
// A code presented exactly at its expiry is still valid.
func (o OTP) IsExpiredAt(t time.Time) bool {
	return t.After(o.expiresAt)
}

// Validate ensures the OTP was created through NewOTP or GenerateOTP.
func (o OTP) Validate() error {
	return o.guard.Validate(ErrOTPIsNotConstructed)
}
