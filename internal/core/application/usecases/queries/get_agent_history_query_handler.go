package queries

import (
	"context"

	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/shipment"
)

// GetAgentHistoryQueryHandler retrieves an agent's completed deliveries from
// the database. Reads the shipments table directly; only delivered rows
// carry the agent's identifier, so no status filter is needed.
//
// Example:
//
//	handler := NewGetAgentHistoryQueryHandler(db)
//	query, _ := NewGetAgentHistoryQuery(agentID)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to get history: %v", err)
//	    return err
//	}
//	fmt.Printf("%d deliveries on record\n", len(history))
type GetAgentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentHistoryQueryHandler creates a handler for agent history
// queries. Requires a GORM database connection for query execution.
func NewGetAgentHistoryQueryHandler(db *gorm.DB) GetAgentHistoryQueryHandler {
	return GetAgentHistoryQueryHandler{db: db}
}

// Handle executes the query, returning the agent's deliveries ordered by
// delivery time, newest first. An agent with no deliveries yields an empty
// slice, not an error.
func (h GetAgentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAgentHistoryQuery,
) ([]GetAgentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetAgentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			delivered_at,
			status
		FROM shipments
		WHERE delivered_by = ?
		ORDER BY delivered_at DESC
	`, query.AgentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetAgentHistoryQueryResponse
		var status int

		err = rows.Scan(
			&entry.Number,
			&entry.DeliveredAt,
			&status,
		)
		if err != nil {
			return nil, err
		}

		entry.Status = shipment.Status(status)
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
