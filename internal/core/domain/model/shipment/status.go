package shipment

import (
	"fmt"

	"lastmile/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with a single one-way transition to ensure
// deliveries are confirmed exactly once.
//
// State transitions:
//
//	Pending ──> Delivered
//
// Delivered is a terminal state: no transition leads out of it, and there is
// no path back to Pending. Status is a value object that validates state
// transitions and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of an ingested shipment.
	// Shipments in this status are awaiting delivery confirmation.
	Pending

	// Delivered indicates the shipment has been confirmed as delivered.
	// This is a terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Pending" or "Delivered" for valid statuses and "Unknown" for
// invalid status values. Implements the fmt.Stringer interface and is safe
// to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveDeliveryRecord validates the consistency between shipment
// status and the delivery record (delivered_at/delivered_by pair).
//
// Business rules:
//   - Pending shipments must not carry a delivery record
//   - Delivered shipments must carry a delivery record
//
// Parameters:
//   - record: whether the shipment has a delivery record
//
// Returns a validation error if status and delivery record are inconsistent.
func (s Status) ValidateCanHaveDeliveryRecord(record bool) error {
	if record && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery record", s.String()),
		)
	}

	if !record && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery record", s.String()),
		)
	}

	return nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending -> Delivered (delivery confirmed)
//
// Invalid transitions:
//   - Delivered -> Delivered (already delivered, returns ErrAlreadyDelivered)
//   - Unknown -> Delivered (invalid initial state)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, ErrAlreadyDelivered) if the shipment is already in the terminal state
//   - (0, error) if the current status is invalid
//
// This method is used by Shipment.ConfirmDelivery to enforce the one-way
// state transition.
func (s Status) Deliver() (Status, error) {
	switch s {
	case Pending:
		return Delivered, nil
	case Delivered:
		return 0, ErrAlreadyDelivered
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
}
