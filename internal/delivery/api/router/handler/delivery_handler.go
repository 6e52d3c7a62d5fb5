package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryFeeUC usecase.DeliveryFeeUsecase
}

// DeliveryHandler exposes delivery pricing
type DeliveryHandler struct {
	deliveryFeeUC usecase.DeliveryFeeUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryFeeUC: params.DeliveryFeeUC}
}

// ListRules returns the active delivery rules
func (h *DeliveryHandler) ListRules(c echo.Context) error {
	rules, err := h.deliveryFeeUC.ListRules(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rules)
}

// Quote prices delivery for ?region= and an optional ?subtotal=
func (h *DeliveryHandler) Quote(c echo.Context) error {
	region := c.QueryParam("region")
	if region == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "region is required")
	}

	subtotal := decimal.Zero
	if raw := c.QueryParam("subtotal"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return response.BadRequest(c, "VALIDATION_FAILED", "subtotal must be a non-negative amount")
		}
		subtotal = parsed
	}

	quote, err := h.deliveryFeeUC.Quote(c.Request().Context(), region, subtotal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
