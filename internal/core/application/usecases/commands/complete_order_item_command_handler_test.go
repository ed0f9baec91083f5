package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/events"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completeItem(
	t *testing.T, h commands.CompleteOrderItemCommandHandler,
	orderID, itemID, staffID kernel.UUID,
	repo *MockOrderRepository, uow *MockOrderUoW, factory *MockOrderUoWFactory,
	aggregate any,
) {
	t.Helper()
	ctx := t.Context()

	cmd, err := commands.NewCompleteOrderItemCommand(orderID, itemID, staffID)
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, h.Handle(ctx, cmd))
}

func TestCompleteOrderItemCommandHandler_Handle_AllReadyAnnouncedOnce(t *testing.T) {
	owner := kernel.NewUUID()
	staffID := kernel.NewUUID()
	aggregate, itemIDs := buildOrder(t, owner)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	staff := new(MockStaffDirectory)
	staff.On("FullName", mock.Anything, staffID).Return("Asha Kulkarni", nil)
	publisher := new(RecordingPublisher)

	h := commands.NewCompleteOrderItemCommandHandler(factory, publisher, staff)

	completeItem(t, h, aggregate.ID(), itemIDs[0], staffID, repo, uow, factory, aggregate)
	require.Equal(t, []string{events.OrderItemReady}, publisher.Names(),
		"first completion leaves an item pending, no all-ready yet")
	assert.Equal(t, 1, publisher.published[0].Payload["remaining_items"])
	assert.Equal(t, "Masala Dosa", publisher.published[0].Payload["item_name"])

	completeItem(t, h, aggregate.ID(), itemIDs[1], staffID, repo, uow, factory, aggregate)
	assert.Equal(t,
		[]string{events.OrderItemReady, events.OrderItemReady, events.OrderAllReady},
		publisher.Names(),
		"second completion announces all-ready exactly once")
	assert.Equal(t, "ready", publisher.published[2].Payload["overall_status"])
}

func TestCompleteOrderItemCommandHandler_Handle_MissingItem(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	aggregate, _ := buildOrder(t, owner)

	cmd, err := commands.NewCompleteOrderItemCommand(aggregate.ID(), kernel.NewUUID(), kernel.NewUUID())
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

	h := commands.NewCompleteOrderItemCommandHandler(factory, publisher, new(MockStaffDirectory))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Empty(t, publisher.published)
}
