package commands

import (
	"errors"

	"lastmile/internal/pkg/guard"
)

var (
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
	ErrAgentNameIsRequired     = errors.New("agent name is required")
	ErrAgentContactIsRequired  = errors.New("agent email or mobile is required")
	ErrAgentPasswordIsRequired = errors.New("agent password is required")
)

// RegisterAgentCommand represents a request to enroll a delivery agent in
// the directory. At least one of email or mobile must be present; either
// can later serve as the login identifier.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	mobile   string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register an agent.
// The password is carried in clear only as far as the handler, which hashes
// it before anything is persisted.
func NewRegisterAgentCommand(name, email, mobile, password string) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setName(name),
		cmd.setContacts(email, mobile),
		cmd.setPassword(password),
	)
	if err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Email returns the agent's email address, possibly empty.
func (c RegisterAgentCommand) Email() string {
	return c.email
}

// Mobile returns the agent's mobile number, possibly empty.
func (c RegisterAgentCommand) Mobile() string {
	return c.mobile
}

// Password returns the agent's clear-text password.
func (c RegisterAgentCommand) Password() string {
	return c.password
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setContacts(email, mobile string) error {
	if email == "" && mobile == "" {
		return ErrAgentContactIsRequired
	}

	c.email = email
	c.mobile = mobile
	return nil
}

func (c *RegisterAgentCommand) setPassword(password string) error {
	if password == "" {
		return ErrAgentPasswordIsRequired
	}

	c.password = password
	return nil
}
