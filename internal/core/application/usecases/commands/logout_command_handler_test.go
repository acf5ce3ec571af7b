package commands_test

import (
	"context"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type LogoutSessionStore struct{ mock.Mock }

func (m *LogoutSessionStore) Save(ctx context.Context, sess session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *LogoutSessionStore) Load(ctx context.Context) (session.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *LogoutSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestLogoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewLogoutCommand()

	sessionStore := new(LogoutSessionStore)
	sessionStore.On("Clear", ctx).Return(nil).Once()

	handler := commands.NewLogoutCommandHandler(sessionStore)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sessionStore.AssertExpectations(t)
}

func TestLogoutCommandHandler_Handle_ClearError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewLogoutCommand()

	sessionStore := new(LogoutSessionStore)
	sessionStore.On("Clear", ctx).Return(assert.AnError).Once()

	handler := commands.NewLogoutCommandHandler(sessionStore)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
}

func TestLogoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LogoutCommand{} // not constructed properly

	sessionStore := new(LogoutSessionStore)
	handler := commands.NewLogoutCommandHandler(sessionStore)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrLogoutCommandIsNotConstructed)
	sessionStore.AssertNotCalled(t, "Clear")
}
