package commands

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrPresentedCodeIsRequired = errors.New("presented code is required")
)

// ConfirmDeliveryCommand represents an agent's attempt to close out a
// shipment with the code collected from the customer at the doorstep.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	number        string
	presentedCode string
	agentID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery of the
// shipment with the given business identifier. The presented code is passed
// through verbatim; the domain decides whether it matches.
func NewConfirmDeliveryCommand(number, presentedCode string, agentID kernel.UUID) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setNumber(number),
		cmd.setPresentedCode(presentedCode),
		cmd.setAgentID(agentID),
	)
	if err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Number returns the shipment's external business identifier.
func (c ConfirmDeliveryCommand) Number() string {
	return c.number
}

// PresentedCode returns the code the agent collected from the customer.
func (c ConfirmDeliveryCommand) PresentedCode() string {
	return c.presentedCode
}

// AgentID returns the identifier of the confirming agent.
func (c ConfirmDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *ConfirmDeliveryCommand) setNumber(number string) error {
	if number == "" {
		return ErrShipmentNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *ConfirmDeliveryCommand) setPresentedCode(presentedCode string) error {
	if presentedCode == "" {
		return ErrPresentedCodeIsRequired
	}

	c.presentedCode = presentedCode
	return nil
}

func (c *ConfirmDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
