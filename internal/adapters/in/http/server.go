// Package http provides the echo-based HTTP adapter. It translates requests
// into commands and queries, and domain errors into HTTP status codes.
//
// Identity is taken from the X-User-Id and X-User-Role headers, which are set
// by the gateway in front of this service. The adapter enforces role-based
// route access; ownership checks live in the domain layer.
package http

import (
	"errors"
	"net/http"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Roles recognized in the X-User-Role header.
const (
	RoleCustomer = "customer"
	RoleKitchen  = "kitchen"
	RoleAdmin    = "admin"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	cancelItemsHandler      commands.CancelOrderItemsCommandHandler
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler
	rejectItemHandler       commands.RejectOrderItemCommandHandler
	completeItemHandler     commands.CompleteOrderItemCommandHandler
	overrideStatusHandler   commands.OverrideOrderStatusCommandHandler
	processRefundHandler    commands.ProcessRefundCommandHandler
	confirmPaymentHandler   commands.ConfirmPaymentCommandHandler

	// Query handlers
	userOrdersHandler    queries.GetUserOrdersQueryHandler
	kitchenOrdersHandler queries.GetKitchenOrdersQueryHandler
	orderStatsHandler    queries.GetOrderStatsQueryHandler
	allOrdersHandler     queries.GetAllOrdersQueryHandler

	// Event stream
	subscriber Subscriber
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelItemsHandler commands.CancelOrderItemsCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	rejectItemHandler commands.RejectOrderItemCommandHandler,
	completeItemHandler commands.CompleteOrderItemCommandHandler,
	overrideStatusHandler commands.OverrideOrderStatusCommandHandler,
	processRefundHandler commands.ProcessRefundCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	userOrdersHandler queries.GetUserOrdersQueryHandler,
	kitchenOrdersHandler queries.GetKitchenOrdersQueryHandler,
	orderStatsHandler queries.GetOrderStatsQueryHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	subscriber Subscriber,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		cancelItemsHandler:      cancelItemsHandler,
		updateItemStatusHandler: updateItemStatusHandler,
		rejectItemHandler:       rejectItemHandler,
		completeItemHandler:     completeItemHandler,
		overrideStatusHandler:   overrideStatusHandler,
		processRefundHandler:    processRefundHandler,
		confirmPaymentHandler:   confirmPaymentHandler,
		userOrdersHandler:       userOrdersHandler,
		kitchenOrdersHandler:    kitchenOrdersHandler,
		orderStatsHandler:       orderStatsHandler,
		allOrdersHandler:        allOrdersHandler,
		subscriber:              subscriber,
	}
}

// RegisterRoutes binds all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// customer
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetMyOrders)
	api.POST("/orders/:orderId/items/cancel", s.CancelItems)

	// kitchen
	api.GET("/kitchen/orders", s.GetKitchenOrders)
	api.GET("/kitchen/stats", s.GetKitchenStats)
	api.PATCH("/kitchen/orders/:orderId/items/:itemId/status", s.UpdateItemStatus)
	api.POST("/kitchen/orders/:orderId/items/:itemId/reject", s.RejectItem)
	api.POST("/kitchen/orders/:orderId/items/:itemId/complete", s.CompleteItem)

	// admin
	api.GET("/admin/orders", s.GetAllOrders)
	api.GET("/admin/orders/stats", s.GetOrderStats)
	api.PUT("/admin/orders/:orderId/status", s.OverrideStatus)
	api.POST("/admin/orders/:orderId/refund", s.ProcessRefund)

	// payment collaborator
	api.POST("/payments/confirm", s.ConfirmPayment)

	// event stream
	api.GET("/events", s.StreamEvents)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// identity extracts the caller's id for the required role, or fails with the
// appropriate status.
func identity(ctx echo.Context, role string) (kernel.UUID, error) {
	if ctx.Request().Header.Get("X-User-Role") != role {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusForbidden, "insufficient role")
	}

	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid X-User-Id")
	}
	return userID, nil
}

// fail maps a domain error to its HTTP response.
func fail(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrNotOrderOwner):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict), errors.Is(err, order.ErrItemTerminal):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderClosed),
		errors.Is(err, order.ErrNothingToCancel),
		errors.Is(err, order.ErrOrderNotPaid),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, commands.ErrItemIDsAreRequired),
		errors.Is(err, commands.ErrReasonIsRequired),
		errors.Is(err, commands.ErrPaymentOutcomeIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
