package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/metrics"
)

// PurgeExpiredOTPsCommandHandler handles the periodic cleanup of lapsed
// codes. Codes are retained for the policy's retention window after they
// lapse, so a late confirmation against one still reads as expired rather
// than invalid; only codes lapsed longer than that are cleared.
type PurgeExpiredOTPsCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     shipment.OTPPolicy
}

// NewPurgeExpiredOTPsCommandHandler creates a handler for code cleanup
// operations. Requires a ShipmentUoWFactory for transactional persistence
// and the OTPPolicy whose retention window bounds the sweep.
func NewPurgeExpiredOTPsCommandHandler(uowFactory ShipmentUoWFactory, policy shipment.OTPPolicy) PurgeExpiredOTPsCommandHandler {
	return PurgeExpiredOTPsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the purge command, clearing every code whose expiry lies
// further in the past than the retention window. Returns the number of
// shipments affected.
func (h *PurgeExpiredOTPsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredOTPsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-h.policy.RetentionWindow())
	purged, err := uow.ShipmentRepository().ClearExpiredOTPs(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	metrics.ExpiredOTPsPurged.Add(float64(purged))

	return purged, nil
}
