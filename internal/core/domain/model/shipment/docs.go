// Package shipment provides domain entities and business logic for delivery
// confirmation. It implements the Shipment aggregate root with the one-time
// code lifecycle and the terminal delivery state transition.
//
// The package includes:
//   - Shipment: The aggregate root guarding code issuance and confirmation
//   - Status: A state machine enforcing the one-way Pending -> Delivered transition
//   - OTP: A value object pairing a numeric code with its expiry
//   - OTPPolicy: Configuration for code width and validity window
//
// Key business rules:
//   - At most one valid code per shipment at any instant; issuing overwrites
//   - A code is consumable at most once: successful confirmation invalidates it
//   - Delivered is terminal; repeat confirmations are rejected distinctly
//     from wrong-code attempts
//   - The delivery record (timestamp + agent) is written exactly once,
//     together with the status transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
