package ports

import "context"

// NotificationSink delivers a freshly issued code to the customer.
//
// Delivery is best-effort: the issuing use case invokes the sink after the
// code is persisted, logs any failure, and never propagates it to the
// caller. The operator can always resend by issuing again.
type NotificationSink interface {
	// Notify sends the code for the given shipment to the contact address.
	Notify(ctx context.Context, contact, code, shipmentNumber string) error
}
