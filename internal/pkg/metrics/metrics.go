// Package metrics exposes Prometheus counters for the delivery
// confirmation flow. Counters are registered on the default registry via
// promauto and served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OTPIssued counts one-time codes generated and persisted.
	OTPIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lastmile_otp_issued_total",
		Help: "Total number of one-time codes issued for shipments",
	})

	// DeliveriesConfirmed counts successful Pending to Delivered transitions.
	DeliveriesConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lastmile_deliveries_confirmed_total",
		Help: "Total number of shipments confirmed as delivered",
	})

	// ConfirmationFailures counts rejected confirmation attempts by reason.
	ConfirmationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lastmile_confirmation_failures_total",
		Help: "Total number of rejected delivery confirmation attempts",
	}, []string{"reason"})

	// NotificationFailures counts best-effort OTP notifications that failed.
	// Failures never affect issuance; this counter is the only visibility.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lastmile_otp_notification_failures_total",
		Help: "Total number of failed OTP notification deliveries",
	})

	// ExpiredOTPsPurged counts stale codes cleared by the cleanup job.
	ExpiredOTPsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lastmile_expired_otps_purged_total",
		Help: "Total number of expired one-time codes purged",
	})
)

// Confirmation failure reasons used as the "reason" label value.
const (
	ReasonNotFound         = "not_found"
	ReasonAlreadyDelivered = "already_delivered"
	ReasonInvalidCode      = "invalid_code"
	ReasonCodeExpired      = "code_expired"
)
