package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"lastmile/internal/core/application/usecases/commands"
)

// OTPCleanupJob manages the scheduled purge of lapsed one-time codes.
// Runs every minute; the handler retains codes for a grace window after
// they lapse, so the sweep only removes codes no confirmation attempt
// would still present.
type OTPCleanupJob struct {
	handler commands.PurgeExpiredOTPsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOTPCleanupJob creates a new job for purging lapsed codes.
func NewOTPCleanupJob(handler commands.PurgeExpiredOTPsCommandHandler, logger *slog.Logger) *OTPCleanupJob {
	return &OTPCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "otp_cleanup_job"),
	}
}

// Start begins the cleanup job, firing at the top of every minute.
func (j *OTPCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeExpiredOTPsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "OTP cleanup job failed to build command", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "OTP cleanup job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired OTPs", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "OTP cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *OTPCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "OTP cleanup job stopped")
}
