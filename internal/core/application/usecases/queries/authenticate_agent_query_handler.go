package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/agent"
	"lastmile/internal/core/domain/model/kernel"
)

// AuthenticateAgentQueryHandler verifies login credentials against the
// agent directory. An unknown identifier and a wrong password both surface
// as agent.ErrAuthenticationFailed: the caller cannot tell which, which
// keeps the login endpoint from leaking who is registered.
type AuthenticateAgentQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateAgentQueryHandler creates a handler for credential checks.
// Requires a GORM database connection for query execution.
func NewAuthenticateAgentQueryHandler(db *gorm.DB) AuthenticateAgentQueryHandler {
	return AuthenticateAgentQueryHandler{db: db}
}

// Handle executes the credential check. On success returns the agent's
// identity; on any mismatch returns agent.ErrAuthenticationFailed.
func (h AuthenticateAgentQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAgentQuery,
) (AuthenticateAgentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateAgentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			password_hash
		FROM agents
		WHERE email = ? OR mobile = ?
	`, query.Identifier(), query.Identifier()).Row()

	var id uuid.UUID
	var name string
	var passwordHash sql.NullString

	err := row.Scan(&id, &name, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateAgentQueryResponse{}, agent.ErrAuthenticationFailed
	}
	if err != nil {
		return AuthenticateAgentQueryResponse{}, err
	}

	if !passwordHash.Valid {
		return AuthenticateAgentQueryResponse{}, agent.ErrAuthenticationFailed
	}

	err = bcrypt.CompareHashAndPassword([]byte(passwordHash.String), []byte(query.Password()))
	if err != nil {
		return AuthenticateAgentQueryResponse{}, agent.ErrAuthenticationFailed
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateAgentQueryResponse{}, err
	}

	return AuthenticateAgentQueryResponse{
		ID:   agentID,
		Name: name,
	}, nil
}
