package notifier

import (
	"context"
	"log/slog"
)

// LogNotifier writes the code to the application log instead of sending it.
// Used when no mail credentials are configured, so local setups still
// surface the code somewhere an operator can read it.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs instead of sending.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the code and reports success.
func (n *LogNotifier) Notify(_ context.Context, contact, code, shipmentNumber string) error {
	n.logger.Info("mail delivery skipped, no credentials configured",
		"shipment", shipmentNumber,
		"contact", contact,
		"code", code)
	return nil
}
