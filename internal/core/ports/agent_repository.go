// Package ports defines repository and collaborator interfaces for the
// delivery confirmation domain. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"lastmile/internal/core/domain/model/agent"
)

// AgentRepository defines the persistence contract for the agent directory.
type AgentRepository interface {
	// Add persists a newly registered agent.
	// Fails with a duplicate-key error when the email or mobile is taken.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// GetByIdentifier retrieves an agent whose email or mobile equals the
	// given identifier. Returns an ObjectNotFoundError when no agent matches.
	GetByIdentifier(ctx context.Context, identifier string) (*agent.Agent, error)
}
