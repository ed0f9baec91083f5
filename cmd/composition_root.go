package cmd

import (
	"canteen/internal/adapters/out/eventbus"
	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/staffdir"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	broadcaster *eventbus.Broadcaster
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, broadcaster *eventbus.Broadcaster) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		broadcaster: broadcaster,
	}
}

func (c *CompositionRoot) Broadcaster() *eventbus.Broadcaster {
	return c.broadcaster
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateCancelOrderItemsCommandHandler() commands.CancelOrderItemsCommandHandler {
	return commands.NewCancelOrderItemsCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	return commands.NewUpdateItemStatusCommandHandler(c.orderUoWFactory(), c.broadcaster, c.staffDirectory())
}

func (c *CompositionRoot) CreateRejectOrderItemCommandHandler() commands.RejectOrderItemCommandHandler {
	return commands.NewRejectOrderItemCommandHandler(c.orderUoWFactory(), c.broadcaster, c.staffDirectory())
}

func (c *CompositionRoot) CreateCompleteOrderItemCommandHandler() commands.CompleteOrderItemCommandHandler {
	return commands.NewCompleteOrderItemCommandHandler(c.orderUoWFactory(), c.broadcaster, c.staffDirectory())
}

func (c *CompositionRoot) CreateOverrideOrderStatusCommandHandler() commands.OverrideOrderStatusCommandHandler {
	return commands.NewOverrideOrderStatusCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateProcessRefundCommandHandler() commands.ProcessRefundCommandHandler {
	return commands.NewProcessRefundCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.broadcaster)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffDirectory() ports.StaffDirectory {
	return staffdir.NewGormStaffDirectory(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
