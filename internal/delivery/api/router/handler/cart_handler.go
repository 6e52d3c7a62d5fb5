package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the shopper's cart
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest is the body of POST /cart/items
type AddItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest is the body of PUT /cart/items/:variantId
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// GetCart returns the caller's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a variant to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	var req AddItemRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), identity, req.VariantID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItem sets the quantity of a cart line; zero removes it
func (h *CartHandler) UpdateItem(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req UpdateItemRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), identity, variantID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), identity, variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// Summary prices the cart with delivery to the region in ?region=
func (h *CartHandler) Summary(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	region := c.QueryParam("region")
	if region == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "region is required")
	}

	summary, err := h.cartUC.Summary(c.Request().Context(), identity, region)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
