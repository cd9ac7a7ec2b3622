package commands

import (
	"errors"

	"lastmile/internal/pkg/guard"
)

var ErrPurgeExpiredOTPsCommandIsNotConstructed = errors.New(
	"PurgeExpiredOTPsCommand must be created via NewPurgeExpiredOTPsCommand constructor",
)

// PurgeExpiredOTPsCommand represents a housekeeping request to clear codes
// whose expiry has passed. It carries no parameters; the cutoff is the
// handler's clock.
type PurgeExpiredOTPsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewPurgeExpiredOTPsCommand creates a command to purge lapsed codes.
func NewPurgeExpiredOTPsCommand() (PurgeExpiredOTPsCommand, error) {
	return PurgeExpiredOTPsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredOTPsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredOTPsCommandIsNotConstructed)
}
