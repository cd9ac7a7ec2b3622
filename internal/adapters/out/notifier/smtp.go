// Package notifier provides NotificationSink implementations for delivering
// one-time codes to customers.
package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

// SMTPConfig holds the connection settings for the outgoing mail server.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPNotifier sends codes to customers over plain SMTP with AUTH.
type SMTPNotifier struct {
	config SMTPConfig
	ttl    time.Duration
}

// NewSMTPNotifier creates a notifier that sends mail through the configured
// server. The ttl only feeds the message text so the customer knows how long
// the code lasts.
func NewSMTPNotifier(config SMTPConfig, ttl time.Duration) *SMTPNotifier {
	return &SMTPNotifier{config: config, ttl: ttl}
}

// Notify sends the code to the customer's email address.
// net/smtp has no context support, so cancellation is checked up front and
// the dial itself relies on the server's timeouts.
func (n *SMTPNotifier) Notify(ctx context.Context, contact, code, shipmentNumber string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Your Delivery OTP: %s", code)
	body := fmt.Sprintf(
		"Your OTP for shipment %s is %s. It expires in %d minutes.",
		shipmentNumber, code, int(n.ttl.Minutes()),
	)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		n.config.From, contact, subject, body,
	)

	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	addr := n.config.Host + ":" + n.config.Port

	return smtp.SendMail(addr, auth, n.config.From, []string{contact}, []byte(msg))
}
