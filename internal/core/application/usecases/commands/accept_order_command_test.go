package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptOrderCommand_ValidInput(t *testing.T) {
	orderID, err := kernel.NewOrderID("4")
	require.NoError(t, err)

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewAcceptOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.OrderID{} // zero value, should trigger validation error
	_, err := commands.NewAcceptOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestAcceptOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AcceptOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
}
