// Package agent provides the Agent aggregate: the courier who performs and
// confirms deliveries. The core treats agent identity as opaque; this
// package backs the directory that resolves credentials to that identity.
package agent

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not
	// created through NewAgent or RestoreAgent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent")

	// ErrAuthenticationFailed indicates that the identifier/secret pair did
	// not resolve to an agent. The message does not say which part was wrong.
	ErrAuthenticationFailed = errors.New("invalid credentials")
)

// Agent represents a delivery courier registered in the directory.
// An agent authenticates with either their email or their mobile number,
// so at least one of the two must be present.
type Agent struct {
	id           kernel.UUID
	name         string
	email        string
	mobile       string
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewAgent registers a new agent. The password hash is produced by the
// application layer; this constructor only enforces structural rules:
// a valid identifier, a non-empty name, a non-empty hash, and at least one
// of email or mobile.
func NewAgent(id kernel.UUID, name, email, mobile, passwordHash string, createdAt time.Time) (*Agent, error) {
	a := &Agent{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setContacts(email, mobile),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	a.createdAt = createdAt
	return a, nil
}

// RestoreAgent reconstructs an agent from persistence.
func RestoreAgent(id kernel.UUID, name, email, mobile, passwordHash string, createdAt time.Time) (*Agent, error) {
	return NewAgent(id, name, email, mobile, passwordHash, createdAt)
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}

	return nil
}

// ID returns the agent's unique identifier. This is the opaque agent
// identity recorded on delivered shipments.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// Email returns the agent's email, empty if registered with mobile only.
func (a *Agent) Email() string {
	return a.email
}

// Mobile returns the agent's mobile number, empty if registered with email only.
func (a *Agent) Mobile() string {
	return a.mobile
}

// PasswordHash returns the stored credential hash.
func (a *Agent) PasswordHash() string {
	return a.passwordHash
}

// CreatedAt returns the registration timestamp.
func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agent) setContacts(email, mobile string) error {
	if email == "" && mobile == "" {
		return errs.NewValueIsRequiredError("email or mobile")
	}
	a.email = email
	a.mobile = mobile
	return nil
}

func (a *Agent) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}
