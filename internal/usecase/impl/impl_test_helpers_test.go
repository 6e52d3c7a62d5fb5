package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testRegion        = "Accra"
	testGoodSignature = "good-signature"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Payments.Currency = "GHS"
	cfg.Payments.AppURL = "https://shop.example.com"
	cfg.Cart.TTL = 7 * 24 * time.Hour
	cfg.Delivery.FallbackFee = decimal.NewFromInt(50)
	cfg.Store = config.StoreConfig{
		Name:          "Test Store",
		BankName:      "GCB Bank",
		AccountName:   "Test Store Ltd",
		AccountNumber: "1234567890",
	}

	return cfg
}

// nopCartCache always misses.
type nopCartCache struct{}

func (nopCartCache) GetCart(context.Context, entity.Identity) (*entity.Cart, error) { return nil, nil }

func (nopCartCache) SetCart(context.Context, entity.Identity, *entity.Cart) error { return nil }

func (nopCartCache) InvalidateCart(context.Context, entity.Identity) error { return nil }

// engineHarness wires the order engine onto the in-memory store with a mocked payment gateway.
type engineHarness struct {
	store     *memory.Store
	repos     repository.RepositoryFactory
	txManager repository.TransactionManager
	gateway   *mockSvc.MockPaymentGateway
	qr        *mockSvc.MockQRCodeService
	config    *config.Config

	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
	payments usecase.PaymentUsecase
	orders   usecase.OrderUsecase
}

func newEngineHarness(t *testing.T) *engineHarness {
	t.Helper()

	store := memory.NewStore()
	h := &engineHarness{
		store:     store,
		repos:     memory.NewRepositoryFactory(store),
		txManager: memory.NewTransactionManager(store),
		gateway:   mockSvc.NewMockPaymentGateway(t),
		qr:        mockSvc.NewMockQRCodeService(t),
		config:    newTestConfig(),
	}

	h.gateway.EXPECT().Name().Return(entity.PaymentProviderHubtel).Maybe()
	h.gateway.EXPECT().VerifyWebhookSignature(mock.Anything, mock.Anything).
		RunAndReturn(func(_ []byte, signature string) bool { return signature == testGoodSignature }).
		Maybe()
	h.gateway.EXPECT().ParseWebhookData(mock.Anything).RunAndReturn(parseTestWebhook).Maybe()

	require.NoError(t, h.repos.DeliveryRuleRepo().UpsertRule(context.Background(), &entity.DeliveryRule{
		Region:    testRegion,
		BaseFee:   decimal.NewFromInt(20),
		FreeAbove: decimalPtr(500),
		MinDays:   1,
		MaxDays:   2,
		IsActive:  true,
	}))

	h.cart = NewCartService(CartServiceParams{
		CartRepo:    h.repos.CartRepo(),
		VariantRepo: h.repos.VariantRepo(),
		StockRepo:   h.repos.StockRepo(),
		RuleRepo:    h.repos.DeliveryRuleRepo(),
		Cache:       nopCartCache{},
		Config:      h.config,
		Logger:      newDiscardLogger(),
	})
	h.checkout = h.newCheckout(h.repos.StockRepo())
	h.payments = NewPaymentService(PaymentServiceParams{
		TxManager:   h.txManager,
		OrderRepo:   h.repos.OrderRepo(),
		PaymentRepo: h.repos.PaymentRepo(),
		Gateway:     h.gateway,
		QRService:   h.qr,
		Config:      h.config,
		Logger:      newDiscardLogger(),
	})
	h.orders = NewOrderService(OrderServiceParams{
		TxManager: h.txManager,
		OrderRepo: h.repos.OrderRepo(),
		Logger:    newDiscardLogger(),
	})

	return h
}

func (h *engineHarness) newCheckout(stockRepo repository.StockRepository) usecase.CheckoutUsecase {
	return NewCheckoutService(CheckoutServiceParams{
		TxManager:   h.txManager,
		CartRepo:    h.repos.CartRepo(),
		VariantRepo: h.repos.VariantRepo(),
		StockRepo:   stockRepo,
		RuleRepo:    h.repos.DeliveryRuleRepo(),
		OrderRepo:   h.repos.OrderRepo(),
		PaymentRepo: h.repos.PaymentRepo(),
		Gateway:     h.gateway,
		Cache:       nopCartCache{},
		Config:      h.config,
		Logger:      newDiscardLogger(),
	})
}

// seedVariant creates an active variant with one stock location per quantity given.
func (h *engineHarness) seedVariant(t *testing.T, name string, price int64, quantities ...int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	variant := &entity.Variant{
		ID:          uuid.New(),
		ProductID:   uuid.New(),
		ProductName: name,
		SKU:         "SKU-" + name,
		Price:       decimal.NewFromInt(price),
		IsActive:    true,
	}
	require.NoError(t, h.repos.VariantRepo().CreateVariant(ctx, variant))

	for _, qty := range quantities {
		require.NoError(t, h.repos.StockRepo().CreateStockRecord(ctx, &entity.StockRecord{
			VariantID:  variant.ID,
			LocationID: uuid.New(),
			Quantity:   qty,
		}))
	}

	return variant.ID
}

// stockOf sums quantity and reserved across every location of a variant.
func (h *engineHarness) stockOf(t *testing.T, variantID uuid.UUID) (quantity, reserved int) {
	t.Helper()

	records, err := h.repos.StockRepo().FindByVariants(context.Background(), []uuid.UUID{variantID})
	require.NoError(t, err)
	for _, rec := range records {
		require.GreaterOrEqual(t, rec.Reserved, 0)
		require.LessOrEqual(t, rec.Reserved, rec.Quantity)
		quantity += rec.Quantity
		reserved += rec.Reserved
	}

	return quantity, reserved
}

func (h *engineHarness) addToCart(t *testing.T, identity entity.Identity, variantID uuid.UUID, qty int) {
	t.Helper()

	_, err := h.cart.AddItem(context.Background(), identity, variantID, qty)
	require.NoError(t, err)
}

func (h *engineHarness) placeOrder(t *testing.T, identity entity.Identity, method entity.PaymentMethod) *usecase.CheckoutResult {
	t.Helper()

	result, err := h.checkout.Checkout(context.Background(), checkoutInput(identity, method))
	require.NoError(t, err)

	return result
}

func (h *engineHarness) order(t *testing.T, orderID uuid.UUID) *entity.Order {
	t.Helper()

	order, err := h.orders.GetOrder(context.Background(), orderID, usecase.Viewer{IsOperator: true})
	require.NoError(t, err)

	return order
}

func (h *engineHarness) payment(t *testing.T, reference string) *entity.Payment {
	t.Helper()

	payment, err := h.repos.PaymentRepo().FindPaymentByReference(context.Background(), reference)
	require.NoError(t, err)

	return payment
}

func (h *engineHarness) outboxEvents(t *testing.T) []*entity.OutboxEvent {
	t.Helper()

	events, err := h.repos.OutboxRepo().FetchUnpublished(context.Background(), 1000)
	require.NoError(t, err)

	return events
}

func checkoutInput(identity entity.Identity, method entity.PaymentMethod) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Identity: identity,
		Contact: entity.ContactInfo{
			Name:  "Ama Mensah",
			Email: "ama@example.com",
			Phone: "024 123 4567",
		},
		Shipping: entity.ShippingAddress{
			Region: testRegion,
			City:   "Osu",
			Street: "12 Oxford Street",
		},
		PaymentMethod: method,
		Meta:          entity.RequestMeta{IPAddress: "127.0.0.1", UserAgent: "test"},
	}
}

type testWebhook struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
}

func webhookPayload(t *testing.T, reference, status, amount string) []byte {
	t.Helper()

	payload, err := json.Marshal(testWebhook{Reference: reference, Status: status, Amount: amount})
	require.NoError(t, err)

	return payload
}

func parseTestWebhook(payload []byte) (*service.WebhookData, error) {
	var body testWebhook
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, err
	}

	amount := decimal.Zero
	if body.Amount != "" {
		parsed, err := decimal.NewFromString(body.Amount)
		if err != nil {
			return nil, err
		}
		amount = parsed
	}

	return &service.WebhookData{
		Reference:         body.Reference,
		Status:            entity.NormalizeProviderStatus(body.Status),
		RawStatus:         body.Status,
		Amount:            amount,
		ProviderReference: "PRV-" + body.Reference,
	}, nil
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)

	return &d
}

func sessionIdentity() entity.Identity {
	return entity.SessionIdentity("sess-" + uuid.NewString())
}
