package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order reads and operator status changes
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest is the body of the operator status endpoint
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

// GetOrder returns one order with its history
func (h *OrderHandler) GetOrder(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID, viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders returns the signed-in customer's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := pagination(c)

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, orders, limit, offset)
}

// UpdateStatus applies an operator status change
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateStatusRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	status := entity.OrderStatus(req.Status)
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown order status")
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		OrderID:    orderID,
		Status:     status,
		Note:       req.Note,
		OperatorID: operatorID,
		Meta:       requestMeta(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
