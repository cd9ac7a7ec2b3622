package commands

import (
	"errors"

	"lastmile/internal/pkg/guard"
)

var (
	ErrIssueOTPCommandIsNotConstructed = errors.New(
		"IssueOTPCommand must be created via NewIssueOTPCommand constructor",
	)
	ErrShipmentNumberIsRequired = errors.New("shipment number is required")
)

// IssueOTPCommand represents a request to mint a one-time code for a
// shipment and notify the customer.
//
// Example:
//
//	cmd, err := NewIssueOTPCommand("SHP-1001")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewIssueOTPCommandHandler(uowFactory, sink, policy, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to issue code: %w", err)
//	}
//	fmt.Printf("Code expires at %s", result.ExpiresAt)
type IssueOTPCommand struct { //nolint:recvcheck //using for validation
	number string

	guard guard.ConstructorGuard
}

// NewIssueOTPCommand creates a command to issue a code for the shipment
// with the given business identifier. Returns an error if the identifier
// is empty.
func NewIssueOTPCommand(number string) (IssueOTPCommand, error) {
	cmd := IssueOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return IssueOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIssueOTPCommandIsNotConstructed if validation fails.
func (c IssueOTPCommand) Validate() error {
	return c.guard.Validate(ErrIssueOTPCommandIsNotConstructed)
}

// Number returns the shipment's external business identifier.
func (c IssueOTPCommand) Number() string {
	return c.number
}

func (c *IssueOTPCommand) setNumber(number string) error {
	if number == "" {
		return ErrShipmentNumberIsRequired
	}

	c.number = number
	return nil
}
