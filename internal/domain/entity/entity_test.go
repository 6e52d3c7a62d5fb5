package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPendingPayment, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusDispatched, true},
		{OrderStatusPendingPayment, OrderStatusProcessing, false},
		{OrderStatusPendingPayment, OrderStatusDispatched, false},
		{OrderStatusPendingPayment, OrderStatusCompleted, false},
		{OrderStatusPendingPayment, OrderStatusRefunded, true},
		{OrderStatusDispatched, OrderStatusPacked, false},
		{OrderStatusPaid, OrderStatusPaid, false},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusRefunded, true},
		{OrderStatusCompleted, OrderStatusRefunded, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
		{OrderStatusRefunded, OrderStatusCancelled, false},
		{OrderStatusPaid, OrderStatus("SHIPPED"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrder_MarkStatusTimestampSetsOnce(t *testing.T) {
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order := &Order{}

	order.MarkStatusTimestamp(OrderStatusPaid, first)
	order.MarkStatusTimestamp(OrderStatusPaid, first.Add(time.Hour))

	assert.True(t, order.IsPaid())
	assert.Equal(t, first, *order.PaidAt)
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{" Operator", "customer", "admin", "operator"})

	assert.Equal(t, Roles{RoleOperator, RoleCustomer}, roles)
	assert.Equal(t, []string{"operator", "customer"}, roles.ToStrings())
	assert.False(t, RolesFromStrings(nil).Contains(RoleOperator))
}

func TestIdentity(t *testing.T) {
	customerID := uuid.New()

	customer := CustomerIdentity(customerID)
	assert.True(t, customer.IsValid())
	assert.True(t, customer.IsCustomer())
	assert.Equal(t, "customer:"+customerID.String(), customer.Key())

	session := SessionIdentity("  abcdef123456 ")
	assert.True(t, session.IsValid())
	assert.Equal(t, "session:abcdef***", session.String())
	assert.Equal(t, "session:abcdef123456", session.Key())

	assert.False(t, Identity{}.IsValid())
	assert.False(t, Identity{CustomerID: &customerID, SessionToken: "x"}.IsValid())
}

func TestParsePaymentMethod(t *testing.T) {
	method, ok := ParsePaymentMethod(" MoMo_MTN ")
	assert.True(t, ok)
	assert.True(t, method.IsMobileMoney())

	method, ok = ParsePaymentMethod("bank_transfer")
	assert.True(t, ok)
	assert.True(t, method.IsManual())

	_, ok = ParsePaymentMethod("cash")
	assert.False(t, ok)
}

func TestPaymentMethod_Selector(t *testing.T) {
	for _, selector := range []string{"momo_mtn", "momo_vodafone", "momo_airteltigo", "card", "bank_transfer"} {
		method, ok := ParsePaymentMethod(selector)
		assert.True(t, ok)
		assert.Equal(t, selector, method.Selector())
	}
	assert.Equal(t, "other", PaymentMethod("OTHER").Selector())
}

func TestNormalizeProviderStatus(t *testing.T) {
	tests := map[string]ProviderStatus{
		"Successful": ProviderStatusSuccess,
		"paid":       ProviderStatusSuccess,
		"FAILED":     ProviderStatusFailed,
		"canceled":   ProviderStatusCancelled,
		"pending":    ProviderStatusPending,
		"reversed":   ProviderStatusUnknown,
	}

	for raw, want := range tests {
		assert.Equal(t, want, NormalizeProviderStatus(raw), raw)
	}
	assert.True(t, ProviderStatusCancelled.IsFailure())
	assert.False(t, ProviderStatusPending.IsFailure())
}
