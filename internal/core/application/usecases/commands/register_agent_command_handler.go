package commands

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lastmile/internal/core/domain/model/agent"
	"lastmile/internal/core/domain/model/kernel"
)

// RegisterAgentCommandHandler handles agent enrollment.
// Hashes the password with bcrypt before the aggregate is built, so the
// clear text never crosses the domain boundary.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
// Requires an AgentUoWFactory for transactional persistence.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// RegisterAgentResult reports the identifier assigned to the new agent.
type RegisterAgentResult struct {
	ID kernel.UUID
}

// Handle processes the registration command.
// Duplicate email or mobile surfaces as the repository's duplicate-key
// error; the caller maps it to a conflict.
func (h *RegisterAgentCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterAgentCommand,
) (RegisterAgentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterAgentResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return RegisterAgentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterAgentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id := kernel.NewUUID()
	aggregate, err := agent.NewAgent(id, cmd.Name(), cmd.Email(), cmd.Mobile(), string(hash), time.Now())
	if err != nil {
		return RegisterAgentResult{}, err
	}

	if err = uow.AgentRepository().Add(ctx, aggregate); err != nil {
		return RegisterAgentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterAgentResult{}, err
	}

	return RegisterAgentResult{ID: id}, nil
}
