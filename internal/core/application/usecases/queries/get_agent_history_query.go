// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database, bypassing aggregates and the unit of work.
package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/guard"
)

var ErrGetAgentHistoryQueryIsNotConstructed = errors.New(
	"GetAgentHistoryQuery must be created via NewGetAgentHistoryQuery constructor",
)

// GetAgentHistoryQuery retrieves the shipments an agent has delivered,
// most recent first.
//
// Example:
//
//	query, err := NewGetAgentHistoryQuery(agentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetAgentHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//	for _, entry := range history {
//	    fmt.Printf("%s delivered at %s\n", entry.Number, entry.DeliveredAt)
//	}
type GetAgentHistoryQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentHistoryQuery creates a query for the given agent's delivery
// history. Returns an error if the agent identifier is not constructed.
func NewGetAgentHistoryQuery(agentID kernel.UUID) (GetAgentHistoryQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentHistoryQuery{}, err
	}

	return GetAgentHistoryQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentHistoryQueryIsNotConstructed if validation fails.
func (q GetAgentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentHistoryQueryIsNotConstructed)
}

// AgentID returns the identifier of the agent whose history is requested.
func (q GetAgentHistoryQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentHistoryQueryResponse represents one completed delivery in an
// agent's history.
type GetAgentHistoryQueryResponse struct {
	Number      string
	DeliveredAt time.Time
	Status      shipment.Status
}
