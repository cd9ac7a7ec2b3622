package commands

import (
	"context"
	"log/slog"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/metrics"
)

// notifyTimeout bounds the background send of a freshly issued code so a
// stalled provider cannot pile up goroutines.
const notifyTimeout = 10 * time.Second

// IssueOTPCommandHandler handles the business logic for code issuance.
// Generates a fresh code under the configured policy, attaches it to the
// shipment (replacing any outstanding code), and notifies the customer.
//
// Example:
//
//	handler := NewIssueOTPCommandHandler(uowFactory, sink, policy, logger)
//	cmd, _ := NewIssueOTPCommand("SHP-1001")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("code issuance failed: %w", err)
//	}
//	// result.ExpiresAt tells the caller when the code lapses
type IssueOTPCommandHandler struct {
	uowFactory ShipmentUoWFactory
	sink       ports.NotificationSink
	policy     shipment.OTPPolicy
	logger     *slog.Logger
}

// NewIssueOTPCommandHandler creates a handler for code issuance operations.
// Requires a ShipmentUoWFactory for transactional persistence, a
// NotificationSink for customer delivery, and the code policy in force.
func NewIssueOTPCommandHandler(
	uowFactory ShipmentUoWFactory,
	sink ports.NotificationSink,
	policy shipment.OTPPolicy,
	logger *slog.Logger,
) IssueOTPCommandHandler {
	return IssueOTPCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		policy:     policy,
		logger:     logger,
	}
}

// IssueOTPResult reports the outcome of a successful issuance.
// Only the expiry is exposed: the code travels to the customer through the
// notification sink and never appears in an API response.
type IssueOTPResult struct {
	ExpiresAt time.Time
}

// Handle processes the code issuance command.
// Persists the new code before notifying, so a failed send never leaves the
// customer holding a code the system does not know. Notification runs in the
// background and its failure is logged, not returned.
func (h *IssueOTPCommandHandler) Handle(ctx context.Context, cmd IssueOTPCommand) (IssueOTPResult, error) {
	if err := cmd.Validate(); err != nil {
		return IssueOTPResult{}, err
	}

	otp, err := shipment.GenerateOTP(h.policy, time.Now())
	if err != nil {
		return IssueOTPResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return IssueOTPResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return IssueOTPResult{}, err
	}

	if err = aggregate.AttachOTP(otp); err != nil {
		return IssueOTPResult{}, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return IssueOTPResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return IssueOTPResult{}, err
	}

	metrics.OTPIssued.Inc()
	go h.notify(aggregate.CustomerContact(), otp.Code(), aggregate.Number())

	return IssueOTPResult{ExpiresAt: otp.ExpiresAt()}, nil
}

func (h *IssueOTPCommandHandler) notify(contact, code, number string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.sink.Notify(ctx, contact, code, number); err != nil {
		metrics.NotificationFailures.Inc()
		h.logger.Error("failed to notify customer",
			"shipment", number,
			"error", err)
	}
}
