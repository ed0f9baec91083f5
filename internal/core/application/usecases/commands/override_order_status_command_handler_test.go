package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOverrideOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	aggregate, _ := buildOrder(t, owner)

	cmd, err := commands.NewOverrideOrderStatusCommand(aggregate.ID(), order.Rejected, "kitchen closed", 2)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewOverrideOrderStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Rejected, aggregate.OverallStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0]
	assert.Equal(t, events.OrderStatusOverriden, event.Name)
	assert.Equal(t, "pending", event.Payload["old_status"])
	assert.Equal(t, "rejected", event.Payload["new_status"])
	assert.Equal(t, "kitchen closed", event.Payload["rejection_message"])
}

func TestOverrideOrderStatusCommandHandler_Handle_StaleView(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	aggregate, itemIDs := buildOrder(t, owner)

	// the admin saw two active items, then the customer cancelled one
	cmd, err := commands.NewOverrideOrderStatusCommand(aggregate.ID(), order.Completed, "", 2)
	require.NoError(t, err)
	_, err = aggregate.CancelItems(owner, []kernel.UUID{itemIDs[0]}, "changed my mind")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(RecordingPublisher)

	h := commands.NewOverrideOrderStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.Pending, aggregate.OverallStatus(), "a stale override must not apply")
	assert.Empty(t, publisher.published)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewOverrideOrderStatusCommand_NegativeCount(t *testing.T) {
	_, err := commands.NewOverrideOrderStatusCommand(kernel.NewUUID(), order.Completed, "", -1)
	require.Error(t, err)
}

func TestNewOverrideOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewOverrideOrderStatusCommand(kernel.NewUUID(), order.StatusUnknown, "", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
