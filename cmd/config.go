package cmd

import "time"

// Config carries all runtime settings, loaded from the environment.
// SMTP settings are optional: with no credentials the service logs the code
// instead of mailing it.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OTPDigits int
	OTPTTL    time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}
