package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler turns carts into orders
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest is the body of POST /checkout
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=9,max=20"`
	Region        string `json:"region" validate:"required"`
	City          string `json:"city" validate:"required"`
	Street        string `json:"street" validate:"required"`
	Landmark      string `json:"landmark"`
	GPSCode       string `json:"gps_code"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=momo_mtn momo_vodafone momo_airteltigo card bank_transfer"`
	PayerPhone    string `json:"payer_phone" validate:"omitempty,min=9,max=20"`
	Notes         string `json:"notes" validate:"max=1000"`
}

// Checkout places an order from the caller's cart
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	var req CheckoutRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	method, ok := entity.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return response.BadRequest(c, "UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method")
	}

	result, err := h.checkoutUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		Identity: identity,
		Contact: entity.ContactInfo{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		Shipping: entity.ShippingAddress{
			Region:   req.Region,
			City:     req.City,
			Street:   req.Street,
			Landmark: req.Landmark,
			GPSCode:  req.GPSCode,
		},
		PaymentMethod: method,
		PayerPhone:    req.PayerPhone,
		Notes:         req.Notes,
		Meta:          requestMeta(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if result.PaymentError != "" {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Order placed but payment could not start",
			slog.String("order_number", result.OrderNumber),
			slog.String("payment_error", result.PaymentError),
		)
	}

	return response.Success(c, http.StatusCreated, result)
}
