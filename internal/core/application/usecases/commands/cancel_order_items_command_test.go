package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderItemsCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	callerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderItemsCommand(orderID, callerID, []kernel.UUID{itemID}, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, callerID, cmd.CallerID())
	assert.Equal(t, []kernel.UUID{itemID}, cmd.ItemIDs())
	assert.Equal(t, "changed my mind", cmd.Reason())
}

func TestNewCancelOrderItemsCommand_NoItems(t *testing.T) {
	_, err := commands.NewCancelOrderItemsCommand(kernel.NewUUID(), kernel.NewUUID(), nil, "reason")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemIDsAreRequired)
}

func TestNewCancelOrderItemsCommand_BlankReason(t *testing.T) {
	itemID := kernel.NewUUID()
	_, err := commands.NewCancelOrderItemsCommand(kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{itemID}, "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}

func TestCancelOrderItemsCommand_NotConstructed(t *testing.T) {
	var cmd commands.CancelOrderItemsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderItemsCommandIsNotConstructed)
}
