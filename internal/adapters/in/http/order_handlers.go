package http

import (
	"net/http"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items       []PlaceOrderItemRequest `json:"items"`
	TotalAmount float64                 `json:"totalAmount"`
	Address     AddressRequest          `json:"address"`
}

// PlaceOrderItemRequest is one line of a new order.
type PlaceOrderItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// AddressRequest is the delivery/pickup address of a new order.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PlaceOrderResponse returns the server-assigned identifiers of a new order.
type PlaceOrderResponse struct {
	OrderID string   `json:"orderId"`
	ItemIDs []string `json:"itemIds"`
}

// PlaceOrder handles POST /api/v1/orders - places a new customer order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	userID, err := identity(ctx, RoleCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	itemIDs := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		productID, idErr := kernel.UUIDFromString(line.ProductID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + line.ProductID,
			})
		}

		itemID := kernel.NewUUID()
		itemIDs = append(itemIDs, itemID.String())
		items = append(items, commands.PlaceOrderItem{
			ItemID:      itemID,
			ProductID:   productID,
			ProductName: line.ProductName,
			Price:       line.Price,
			Quantity:    line.Quantity,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, userID, items, req.TotalAmount, order.Address{
		Street:     req.Address.Street,
		City:       req.Address.City,
		State:      req.Address.State,
		PostalCode: req.Address.PostalCode,
		Country:    req.Address.Country,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		OrderID: orderID.String(),
		ItemIDs: itemIDs,
	})
}

// UserOrderItem is one item line of the customer order history response.
type UserOrderItem struct {
	ID               string  `json:"id"`
	ProductName      string  `json:"productName"`
	Price            float64 `json:"price"`
	Quantity         int     `json:"quantity"`
	Status           string  `json:"status"`
	RejectionMessage string  `json:"rejectionMessage,omitempty"`
}

// UserOrder is one order of the customer order history response.
type UserOrder struct {
	ID               string          `json:"id"`
	OverallStatus    string          `json:"overallStatus"`
	PaymentStatus    string          `json:"paymentStatus"`
	RejectionMessage string          `json:"rejectionMessage,omitempty"`
	TotalAmount      float64         `json:"totalAmount"`
	CreatedAt        string          `json:"createdAt"`
	Items            []UserOrderItem `json:"items"`
}

// GetMyOrders handles GET /api/v1/orders - the caller's order history.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	userID, err := identity(ctx, RoleCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.userOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]UserOrder, len(orders))
	for i, o := range orders {
		items := make([]UserOrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = UserOrderItem{
				ID:               item.ID.String(),
				ProductName:      item.ProductName,
				Price:            item.Price,
				Quantity:         item.Quantity,
				Status:           item.Status,
				RejectionMessage: item.RejectionMessage,
			}
		}
		response[i] = UserOrder{
			ID:               o.ID.String(),
			OverallStatus:    o.OverallStatus,
			PaymentStatus:    o.PaymentStatus,
			RejectionMessage: o.RejectionMessage,
			TotalAmount:      o.TotalAmount,
			CreatedAt:        o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Items:            items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelItemsRequest is the body of POST /api/v1/orders/:orderId/items/cancel.
type CancelItemsRequest struct {
	ItemIDs []string `json:"itemIds"`
	Reason  string   `json:"reason"`
}

// CancelItems handles POST /api/v1/orders/:orderId/items/cancel - cancels a
// subset of the caller's order items.
func (s *Server) CancelItems(ctx echo.Context) error {
	userID, err := identity(ctx, RoleCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req CancelItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemIDs := make([]kernel.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid item id: " + raw,
			})
		}
		itemIDs = append(itemIDs, itemID)
	}

	cmd, err := commands.NewCancelOrderItemsCommand(orderID, userID, itemIDs, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.cancelItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// KitchenOrderItem is one item line of the kitchen board response.
type KitchenOrderItem struct {
	ID               string `json:"id"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	Status           string `json:"status"`
	RejectionMessage string `json:"rejectionMessage,omitempty"`
}

// KitchenOrder is one order of the kitchen board response.
type KitchenOrder struct {
	ID            string             `json:"id"`
	OverallStatus string             `json:"overallStatus"`
	TotalAmount   float64            `json:"totalAmount"`
	CreatedAt     string             `json:"createdAt"`
	Items         []KitchenOrderItem `json:"items"`
}

// GetKitchenOrders handles GET /api/v1/kitchen/orders - the kitchen board.
func (s *Server) GetKitchenOrders(ctx echo.Context) error {
	if _, err := identity(ctx, RoleKitchen); err != nil {
		return fail(ctx, err)
	}

	orders, err := s.kitchenOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetKitchenOrdersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]KitchenOrder, len(orders))
	for i, o := range orders {
		items := make([]KitchenOrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = KitchenOrderItem{
				ID:               item.ID.String(),
				ProductName:      item.ProductName,
				Quantity:         item.Quantity,
				Status:           item.Status,
				RejectionMessage: item.RejectionMessage,
			}
		}
		response[i] = KitchenOrder{
			ID:            o.ID.String(),
			OverallStatus: o.OverallStatus,
			TotalAmount:   o.TotalAmount,
			CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Items:         items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetKitchenStats handles GET /api/v1/kitchen/stats - the same statistics the
// periodic broadcast carries, available on demand.
func (s *Server) GetKitchenStats(ctx echo.Context) error {
	if _, err := identity(ctx, RoleKitchen); err != nil {
		return fail(ctx, err)
	}

	stats, err := s.orderStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStats{
		OrdersByStatus:        stats.OrdersByStatus,
		ItemsByStatus:         stats.ItemsByStatus,
		AvgPreparationSeconds: stats.AvgPreparationSeconds,
	})
}

// UpdateItemStatusRequest is the body of the item status PATCH.
type UpdateItemStatusRequest struct {
	Status string `json:"status"`
}

// UpdateItemStatus handles PATCH /api/v1/kitchen/orders/:orderId/items/:itemId/status.
func (s *Server) UpdateItemStatus(ctx echo.Context) error {
	staffID, err := identity(ctx, RoleKitchen)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req UpdateItemStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.ItemStatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateItemStatusCommand(orderID, itemID, staffID, newStatus)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectItemRequest is the body of the item reject POST.
type RejectItemRequest struct {
	Reason string `json:"reason"`
}

// RejectItem handles POST /api/v1/kitchen/orders/:orderId/items/:itemId/reject.
func (s *Server) RejectItem(ctx echo.Context) error {
	staffID, err := identity(ctx, RoleKitchen)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req RejectItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRejectOrderItemCommand(orderID, itemID, staffID, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.rejectItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteItem handles POST /api/v1/kitchen/orders/:orderId/items/:itemId/complete.
func (s *Server) CompleteItem(ctx echo.Context) error {
	staffID, err := identity(ctx, RoleKitchen)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, itemID, err := pathIDs(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderItemCommand(orderID, itemID, staffID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.completeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pathIDs parses the orderId and itemId path parameters.
func pathIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	return orderID, itemID, nil
}
