package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/metrics"
)

// ConfirmDeliveryCommandHandler handles the business logic for delivery
// confirmation. Loads the shipment, lets the aggregate verify the presented
// code and transition to delivered, then persists the transition with a
// conditional write so concurrent confirmations cannot both succeed.
//
// Example:
//
//	handler := NewConfirmDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewConfirmDeliveryCommand("SHP-1001", "4821", agentID)
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, shipment.ErrAlreadyDelivered):
//	    // someone beat us to it
//	case errors.Is(err, shipment.ErrInvalidCode):
//	    // wrong or missing code
//	case errors.Is(err, shipment.ErrCodeExpired):
//	    // code lapsed, issue a new one
//	}
type ConfirmDeliveryCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation operations. Requires a ShipmentUoWFactory for transactional
// persistence.
func NewConfirmDeliveryCommandHandler(uowFactory ShipmentUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// ConfirmDeliveryResult reports a successful confirmation.
type ConfirmDeliveryResult struct {
	Number      string
	Status      shipment.Status
	DeliveredAt time.Time
}

// Handle processes the delivery confirmation command.
// The aggregate enforces the verification order: unknown shipments surface a
// not-found error, already-delivered shipments report the conflict before
// the code is even inspected, then the code is checked for match and expiry.
func (h *ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
) (ConfirmDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = aggregate.ConfirmDelivery(cmd.PresentedCode(), cmd.AgentID(), time.Now()); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	// The conditional write is what makes the transition exactly-once under
	// concurrency: if another confirmation committed first, Deliver reports
	// shipment.ErrAlreadyDelivered instead of overwriting its record.
	if err = shipmentRepo.Deliver(ctx, aggregate); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	metrics.DeliveriesConfirmed.Inc()

	return ConfirmDeliveryResult{
		Number:      aggregate.Number(),
		Status:      aggregate.Status(),
		DeliveredAt: *aggregate.DeliveredAt(),
	}, nil
}
