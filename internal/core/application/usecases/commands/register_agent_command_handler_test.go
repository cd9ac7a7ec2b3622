package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/agent"
)

func TestRegisterAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAgentCommand("Ravi Kumar", "ravi@example.com", "", "s3cret")

	var stored *agent.Agent
	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*agent.Agent")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*agent.Agent) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAgentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, result.ID.Validate())

	require.NotNil(t, stored)
	assert.Equal(t, "Ravi Kumar", stored.Name())
	assert.NotEqual(t, "s3cret", stored.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash()), []byte("s3cret")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterAgentCommandHandler_Handle_DuplicateIdentifier(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAgentCommand("Ravi Kumar", "ravi@example.com", "", "s3cret")

	dup := errors.New("duplicated key not allowed")
	repo := new(MockAgentRepository)
	uow := new(MockAgentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*agent.Agent")).Return(dup).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAgentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAgentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, dup)
}

func TestRegisterAgentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterAgentCommand{} // not constructed properly
	factory := new(MockAgentUoWFactory)
	h := commands.NewRegisterAgentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
