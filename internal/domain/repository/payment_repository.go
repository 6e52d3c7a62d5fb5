// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePaymentReference is returned when a reference or idempotency key collides.
	ErrDuplicatePaymentReference = errors.New("payment reference already exists")
	// ErrPaymentAlreadySettled is returned when a conditional transition finds the payment no longer PENDING.
	ErrPaymentAlreadySettled = errors.New("payment already settled")
)

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindPaymentByReference looks a payment up by its reference, falling back to the provider reference.
	FindPaymentByReference(ctx context.Context, reference string) (*entity.Payment, error)

	// FindPendingPaymentByOrder returns the newest PENDING payment of an order.
	FindPendingPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// MarkPaymentSucceeded moves a PENDING payment to SUCCESS.
	// It returns ErrPaymentAlreadySettled if the payment is no longer PENDING.
	MarkPaymentSucceeded(ctx context.Context, id uuid.UUID, providerReference *string, paidAt time.Time) error

	// MarkPaymentFailed moves a PENDING payment to FAILED.
	// It returns ErrPaymentAlreadySettled if the payment is no longer PENDING.
	MarkPaymentFailed(ctx context.Context, id uuid.UUID, reason string) error

	// UpdatePaymentReference replaces the reference of a PENDING payment with the provider's.
	UpdatePaymentReference(ctx context.Context, id uuid.UUID, reference string) error
}
