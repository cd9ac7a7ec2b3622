package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/guard"
)

var (
	ErrAuthenticateAgentQueryIsNotConstructed = errors.New(
		"AuthenticateAgentQuery must be created via NewAuthenticateAgentQuery constructor",
	)
	ErrIdentifierIsRequired = errors.New("identifier is required")
	ErrPasswordIsRequired   = errors.New("password is required")
)

// AuthenticateAgentQuery checks an agent's login credentials. The
// identifier may be either the email or the mobile the agent registered
// with.
type AuthenticateAgentQuery struct {
	identifier string
	password   string

	guard guard.ConstructorGuard
}

// NewAuthenticateAgentQuery creates a credential check for the given
// identifier and clear-text password.
func NewAuthenticateAgentQuery(identifier, password string) (AuthenticateAgentQuery, error) {
	if identifier == "" {
		return AuthenticateAgentQuery{}, ErrIdentifierIsRequired
	}
	if password == "" {
		return AuthenticateAgentQuery{}, ErrPasswordIsRequired
	}

	return AuthenticateAgentQuery{
		identifier: identifier,
		password:   password,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateAgentQueryIsNotConstructed if validation fails.
func (q AuthenticateAgentQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAgentQueryIsNotConstructed)
}

// Identifier returns the email or mobile presented at login.
func (q AuthenticateAgentQuery) Identifier() string {
	return q.identifier
}

// Password returns the clear-text password presented at login.
func (q AuthenticateAgentQuery) Password() string {
	return q.password
}

// AuthenticateAgentQueryResponse identifies the authenticated agent.
type AuthenticateAgentQueryResponse struct {
	ID   kernel.UUID
	Name string
}
