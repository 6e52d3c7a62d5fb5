package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves provider callbacks and payment actions
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// RetryPaymentRequest is the optional body of the retry endpoint
type RetryPaymentRequest struct {
	PayerPhone string `json:"payer_phone" validate:"omitempty,min=9,max=20"`
}

// Webhook applies a provider callback. The raw body is needed for the signature.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_WEBHOOK_PAYLOAD", "Webhook body could not be read")
	}

	signature := ""
	for _, header := range h.paymentUC.SignatureHeaders() {
		if v := c.Request().Header.Get(header); v != "" {
			signature = v

			break
		}
	}

	result, err := h.paymentUC.HandleWebhook(ctx, payload, signature)
	if err != nil {
		logger.Warn("Webhook rejected", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	logger.Info("Webhook handled",
		slog.String("reference", result.Reference),
		slog.String("outcome", string(result.Outcome)),
	)

	return response.Success(c, http.StatusOK, result)
}

// VerifyPayment asks the provider for the state of a payment reference
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	reference := c.Param("reference")
	if reference == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "reference is required")
	}

	result, err := h.paymentUC.VerifyPayment(c.Request().Context(), reference, viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RetryPayment starts a new payment attempt for an order awaiting payment
func (h *PaymentHandler) RetryPayment(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req RetryPaymentRequest
	if c.Request().ContentLength != 0 {
		if handled, err := bindAndValidate(c, &req); handled {
			return err
		}
	}

	result, err := h.paymentUC.RetryPayment(c.Request().Context(), orderID, viewer, req.PayerPhone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// BankTransferQR renders the bank-transfer instructions of an order as PNG
func (h *PaymentHandler) BankTransferQR(c echo.Context) error {
	viewer, ok := viewerFrom(c)
	if !ok {
		return response.Unauthorized(c, "IDENTITY_REQUIRED", "A signed-in customer or cart session is required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.paymentUC.BankTransferQR(c.Request().Context(), orderID, viewer)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
