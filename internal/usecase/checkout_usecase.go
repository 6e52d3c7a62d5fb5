package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutInput is everything needed to turn a cart into an order.
type CheckoutInput struct {
	Identity      entity.Identity
	Contact       entity.ContactInfo
	Shipping      entity.ShippingAddress
	PaymentMethod entity.PaymentMethod
	// PayerPhone is the mobile money wallet to charge, when different from the contact phone.
	PayerPhone string
	Notes      string
	Meta       entity.RequestMeta
}

// CheckoutResult describes the placed order and how to pay for it.
type CheckoutResult struct {
	OrderID       uuid.UUID          `json:"order_id"`
	OrderNumber   string             `json:"order_number"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DeliveryFee   decimal.Decimal    `json:"delivery_fee"`
	Total         decimal.Decimal    `json:"total"`
	Currency      string             `json:"currency"`
	Status        entity.OrderStatus `json:"status"`
	PaymentMethod string             `json:"payment_method"` // Checkout selector, e.g. "bank_transfer".
	Reference     string             `json:"reference"`
	CheckoutURL   string             `json:"checkout_url,omitempty"`
	// PaymentError is set when the provider could not start the payment; the order stays payable.
	PaymentError string `json:"payment_error,omitempty"`
}

// CheckoutUsecase converts carts into orders
type CheckoutUsecase interface {
	// Checkout places an order from the identity's cart and starts its payment
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)
}
