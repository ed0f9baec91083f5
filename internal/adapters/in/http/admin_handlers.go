package http

import (
	"net/http"
	"strconv"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// AdminOrder is one row of the admin listing response. ActiveItemCount doubles
// as the concurrency token for status overrides.
type AdminOrder struct {
	ID               string  `json:"id"`
	UserID           string  `json:"userId"`
	OverallStatus    string  `json:"overallStatus"`
	PaymentStatus    string  `json:"paymentStatus"`
	RejectionMessage string  `json:"rejectionMessage,omitempty"`
	TotalAmount      float64 `json:"totalAmount"`
	ItemCount        int     `json:"itemCount"`
	ActiveItemCount  int     `json:"activeItemCount"`
	CreatedAt        string  `json:"createdAt"`
}

// GetAllOrders handles GET /api/v1/admin/orders. Optional query parameters:
// status, payment, userId, page, pageSize.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	if _, err := identity(ctx, RoleAdmin); err != nil {
		return fail(ctx, err)
	}

	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return fail(ctx, err)
	}
	pageSize, err := intQueryParam(ctx, "pageSize")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetAllOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("payment"),
		ctx.QueryParam("userId"),
		page,
		pageSize,
	)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.allOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]AdminOrder, len(orders))
	for i, o := range orders {
		response[i] = AdminOrder{
			ID:               o.ID.String(),
			UserID:           o.UserID.String(),
			OverallStatus:    o.OverallStatus,
			PaymentStatus:    o.PaymentStatus,
			RejectionMessage: o.RejectionMessage,
			TotalAmount:      o.TotalAmount,
			ItemCount:        o.ItemCount,
			ActiveItemCount:  o.ActiveItemCount,
			CreatedAt:        o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// intQueryParam parses an optional integer query parameter, zero when absent.
func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return value, nil
}

// OrderStats is the admin statistics response.
type OrderStats struct {
	OrdersByStatus        map[string]int `json:"ordersByStatus"`
	ItemsByStatus         map[string]int `json:"itemsByStatus"`
	AvgPreparationSeconds *float64       `json:"avgPreparationSeconds"`
}

// GetOrderStats handles GET /api/v1/admin/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	if _, err := identity(ctx, RoleAdmin); err != nil {
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

// OverrideStatusRequest is the body of PUT /api/v1/admin/orders/:orderId/status.
// ObservedActiveItems must repeat the active item count from the listing the
// admin acted on.
type OverrideStatusRequest struct {
	Status              string `json:"status"`
	RejectionMessage    string `json:"rejectionMessage"`
	ObservedActiveItems int    `json:"observedActiveItems"`
}

// OverrideStatus handles PUT /api/v1/admin/orders/:orderId/status.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	if _, err := identity(ctx, RoleAdmin); err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req OverrideStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewOverrideOrderStatusCommand(
		orderID, newStatus, req.RejectionMessage, req.ObservedActiveItems)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessRefundRequest is the body of POST /api/v1/admin/orders/:orderId/refund.
type ProcessRefundRequest struct {
	Amount float64 `json:"amount"`
}

// ProcessRefund handles POST /api/v1/admin/orders/:orderId/refund.
func (s *Server) ProcessRefund(ctx echo.Context) error {
	if _, err := identity(ctx, RoleAdmin); err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req ProcessRefundRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewProcessRefundCommand(orderID, req.Amount)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.processRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPaymentRequest is the body of POST /api/v1/payments/confirm, sent by
// the payment collaborator rather than an end user.
type ConfirmPaymentRequest struct {
	OrderID string `json:"orderId"`
	Outcome string `json:"outcome"`
}

// ConfirmPayment handles POST /api/v1/payments/confirm.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	var req ConfirmPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	outcome, err := order.PaymentStatusFromString(req.Outcome)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, outcome)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
