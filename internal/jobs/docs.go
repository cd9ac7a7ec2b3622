// Package jobs provides scheduled background tasks for the delivery
// confirmation service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. OTPCleanupJob - Runs every minute to purge one-time codes whose expiry
// has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeExpiredOTPsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Expired codes are already unusable for confirmation, so
// the sweep is housekeeping rather than enforcement.
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick; a missed sweep
// never blocks issuance or confirmation.
package jobs
