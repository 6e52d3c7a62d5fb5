// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	DeliveryHandler *handler.DeliveryHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	deliveryHandler *handler.DeliveryHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		deliveryHandler: params.DeliveryHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Provider callbacks authenticate by signature, not by caller identity
	apiV1.POST("/payments/webhook", r.paymentHandler.Webhook)

	deliveryGroup := apiV1.Group("/delivery")
	{
		deliveryGroup.GET("/rules", r.deliveryHandler.ListRules)
		deliveryGroup.GET("/quote", r.deliveryHandler.Quote)
	}

	// Shopper routes accept a signed-in customer or an anonymous cart session
	shop := apiV1.Group("", r.authMiddleware.ResolveIdentity)
	{
		shop.GET("/cart", r.cartHandler.GetCart)
		shop.GET("/cart/summary", r.cartHandler.Summary)
		shop.POST("/cart/items", r.cartHandler.AddItem)
		shop.PUT("/cart/items/:variantId", r.cartHandler.UpdateItem)
		shop.DELETE("/cart/items/:variantId", r.cartHandler.RemoveItem)

		shop.POST("/checkout", r.checkoutHandler.Checkout)

		shop.GET("/orders/:id", r.orderHandler.GetOrder)
		shop.POST("/orders/:id/payments", r.paymentHandler.RetryPayment)
		shop.GET("/orders/:id/payments/qr", r.paymentHandler.BankTransferQR)
		shop.POST("/payments/:reference/verify", r.paymentHandler.VerifyPayment)
	}

	customer := apiV1.Group("", r.authMiddleware.Authenticate)
	{
		customer.GET("/orders", r.orderHandler.ListOrders)

		customer.POST("/devices", r.deviceHandler.RegisterDevice)
		customer.GET("/devices", r.deviceHandler.GetCustomerDevices)
		customer.PUT("/devices/:id/token", r.deviceHandler.UpdateFCMToken)
		customer.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleOperator))
	{
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateStatus)
	}
}
