package shipment

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrAlreadyDelivered indicates the shipment has already reached its
	// terminal state. A second confirmation attempt is reported with this
	// error rather than a code mismatch, so callers can distinguish the two.
	ErrAlreadyDelivered = errors.New("shipment is already delivered")

	// ErrInvalidCode indicates the presented code does not match the
	// outstanding one, or that no code is outstanding at all.
	ErrInvalidCode = errors.New("confirmation code is invalid")

	// ErrCodeExpired indicates the presented code matches but its validity
	// window has passed. Reported distinctly from ErrInvalidCode since the
	// courier can request a fresh code.
	ErrCodeExpired = errors.New("confirmation code has expired")
)

// Shipment represents a trackable delivery unit. It is the aggregate root
// that guards the delivery confirmation state machine: the one-time code
// lifecycle and the one-way Pending to Delivered transition.
//
// Shipment maintains these invariants:
//   - Must have a valid internal identifier and a non-empty tracking number
//   - At most one outstanding code at any instant; issuing overwrites
//   - The code and its expiry are both present or both absent (OTP value object)
//   - The delivery record (timestamp + agent) is absent while Pending and
//     present once Delivered; the transition is one-way and happens once
//   - Can only be created through NewShipment or RestoreShipment
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Shipment struct {
	// id is the store-assigned internal identifier, used for update targeting
	id kernel.UUID

	// number is the external business identifier (e.g. "SHP-1001"),
	// assigned by an upstream system
	number string

	// customerContact is the address the notification sink delivers codes to
	customerContact string

	// status is the current state in the confirmation lifecycle
	status Status

	// otp is the outstanding one-time code, nil when none is outstanding
	otp *OTP

	// deliveredAt records when the delivery was confirmed (nil while Pending)
	deliveredAt *time.Time

	// deliveredBy records the confirming agent (nil while Pending)
	deliveredBy *kernel.UUID

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a Pending shipment with no outstanding code.
// Shipment rows are normally created by an upstream ingestion process; this
// constructor serves that path and test fixtures.
//
// Parameters:
//   - id: Internal store identifier (must be a valid UUID)
//   - number: External business identifier (must be non-empty)
//   - customerContact: Contact address for code notifications (must be non-empty)
//
// Returns the created shipment, or a validation error if any parameter is
// invalid.
func NewShipment(id kernel.UUID, number, customerContact string) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setCustomerContact(customerContact),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// status, outstanding code, and delivery record. It validates cross-field
// consistency: a delivery record is required exactly when the status is
// Delivered, and the record's timestamp and agent must be paired.
func RestoreShipment(
	id kernel.UUID,
	number string,
	customerContact string,
	status Status,
	otp *OTP,
	deliveredAt *time.Time,
	deliveredBy *kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setCustomerContact(customerContact),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if (deliveredAt == nil) != (deliveredBy == nil) {
		return nil, errs.NewValueIsInvalidError("delivery record must pair deliveredAt with deliveredBy")
	}
	if err := status.ValidateCanHaveDeliveryRecord(deliveredAt != nil); err != nil {
		return nil, err
	}
	if otp != nil {
		if err := otp.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.otp = otp
	s.deliveredAt = deliveredAt
	s.deliveredBy = deliveredBy
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed otherwise. This method should be
// called when reconstructing shipments from persistence.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their internal identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store-assigned internal identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Number returns the external business identifier.
func (s *Shipment) Number() string {
	return s.number
}

// CustomerContact returns the notification address for this shipment.
func (s *Shipment) CustomerContact() string {
	return s.customerContact
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// OTP returns the outstanding one-time code, or nil when none is outstanding.
func (s *Shipment) OTP() *OTP {
	return s.otp
}

// DeliveredAt returns the delivery confirmation timestamp.
// Returns nil while the shipment is Pending.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// DeliveredBy returns the identity of the confirming agent.
// Returns nil while the shipment is Pending.
func (s *Shipment) DeliveredBy() *kernel.UUID {
	return s.deliveredBy
}

// AttachOTP replaces any outstanding code with the given one.
//
// Issuance carries overwrite semantics: at most one code is valid per
// shipment at any instant, and every issuance resets the clock. There is no
// status guard here; issuing against an already-delivered shipment is
// harmless because confirmation rejects it before the code is ever checked.
func (s *Shipment) AttachOTP(otp OTP) error {
	if err := otp.Validate(); err != nil {
		return err
	}

	s.otp = &otp
	return nil
}

// ConfirmDelivery validates the presented code and performs the one-way
// Pending to Delivered transition, recording the confirming agent and the
// given timestamp.
//
// Checks run in strict order, each short-circuiting with a distinct error:
//  1. Already delivered -> ErrAlreadyDelivered (precedes code validation so
//     a repeat confirmation is never reported as a bad code)
//  2. Code mismatch or no outstanding code -> ErrInvalidCode
//  3. Code stale at the given instant -> ErrCodeExpired
//
// On success the outstanding code is cleared: the act of confirmation
// consumes it. There is no rollback path from Delivered.
func (s *Shipment) ConfirmDelivery(presentedCode string, agentID kernel.UUID, at time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if s.status == Delivered {
		return ErrAlreadyDelivered
	}

	if s.otp == nil || !s.otp.Matches(presentedCode) {
		return ErrInvalidCode
	}

	if s.otp.IsExpiredAt(at) {
		return ErrCodeExpired
	}

	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveredAt = &at
	s.deliveredBy = &agentID
	s.otp = nil
	return nil
}

// setID validates and sets the internal identifier.
// This is a private method used only during construction.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setNumber validates and sets the external business identifier.
// This is a private method used only during construction.
func (s *Shipment) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	s.number = number
	return nil
}

// setCustomerContact validates and sets the notification address.
// This is a private method used only during construction.
func (s *Shipment) setCustomerContact(customerContact string) error {
	if customerContact == "" {
		return errs.NewValueIsRequiredError("customerContact")
	}
	s.customerContact = customerContact
	return nil
}
