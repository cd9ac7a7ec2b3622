package ports

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// It provides methods for storing, retrieving, and transitioning shipments
// through the delivery confirmation lifecycle.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// Serves the upstream ingestion path and test fixtures.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate
	// unconditionally, targeting it by internal identifier. Used for OTP
	// issuance, where overwrite semantics are intentional and concurrent
	// issuances may race with last-write-wins.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByNumber retrieves a shipment by its external business identifier.
	// Returns an ObjectNotFoundError if no shipment carries the number.
	GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error)

	// Deliver persists the Pending to Delivered transition with a
	// conditional update: the write only applies if the stored status is
	// still Pending. When a concurrent confirmation won the race, Deliver
	// returns shipment.ErrAlreadyDelivered and the aggregate's record is
	// not written.
	Deliver(ctx context.Context, aggregate *shipment.Shipment) error

	// ClearExpiredOTPs removes outstanding codes whose expiry lies before
	// the cutoff. Callers pass a cutoff in the past to retain recently
	// lapsed codes, keeping the expired outcome observable on late
	// confirmations. Returns the number of shipments affected.
	ClearExpiredOTPs(ctx context.Context, cutoff time.Time) (int64, error)
}
