package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	operatorToken = "operator-token"
)

type testServer struct {
	e        *echo.Echo
	cart     *mockUC.MockCartUsecase
	checkout *mockUC.MockCheckoutUsecase
	order    *mockUC.MockOrderUsecase
	payment  *mockUC.MockPaymentUsecase
	delivery *mockUC.MockDeliveryFeeUsecase
	device   *mockUC.MockDeviceUsecase
	tokens   *mockSvc.MockTokenService

	customerID uuid.UUID
	operatorID uuid.UUID
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
		Page      *struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
			Count  int `json:"count"`
		} `json:"page"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		e:          echo.New(),
		cart:       mockUC.NewMockCartUsecase(t),
		checkout:   mockUC.NewMockCheckoutUsecase(t),
		order:      mockUC.NewMockOrderUsecase(t),
		payment:    mockUC.NewMockPaymentUsecase(t),
		delivery:   mockUC.NewMockDeliveryFeeUsecase(t),
		device:     mockUC.NewMockDeviceUsecase(t),
		tokens:     mockSvc.NewMockTokenService(t),
		customerID: uuid.New(),
		operatorID: uuid.New(),
	}

	ts.tokens.EXPECT().ValidateToken(customerToken).Return(&service.Claims{
		UserID: ts.customerID,
		Roles:  []string{entity.RoleCustomer.String()},
	}, nil).Maybe()
	ts.tokens.EXPECT().ValidateToken(operatorToken).Return(&service.Claims{
		UserID: ts.operatorID,
		Roles:  []string{entity.RoleOperator.String()},
	}, nil).Maybe()
	ts.tokens.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("token is malformed")).Maybe()

	cfg := &config.Config{}
	cfg.Cart.CookieSecure = true

	ts.e.Validator = validator.New()
	ts.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: ts.cart, Logger: logger}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: ts.checkout, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: ts.order, Logger: logger}),
		PaymentHandler:  handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: ts.payment, Logger: logger}),
		DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryFeeUC: ts.delivery}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: ts.device, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenSvc: ts.tokens,
			Config:   cfg,
			Logger:   logger,
		}),
	})
	r.RegisterRoutes(ts.e)

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string, headers map[string]string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: constants.CartSessionCookie, Value: token}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCart_IssuesSessionCookie(t *testing.T) {
	ts := newTestServer(t)

	var seen entity.Identity
	ts.cart.EXPECT().GetCart(mock.Anything, mock.Anything).
		Run(func(_ context.Context, identity entity.Identity) { seen = identity }).
		Return(&usecase.CartView{}, nil).Once()

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/cart", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, constants.CartSessionCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*3600, cookie.MaxAge)
	assert.Equal(t, entity.SessionIdentity(cookie.Value), seen)
}

func TestCart_ReusesSessionCookie(t *testing.T) {
	ts := newTestServer(t)

	ts.cart.EXPECT().GetCart(mock.Anything, entity.SessionIdentity("sess-123")).
		Return(&usecase.CartView{}, nil).Once()

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/cart", "", nil, sessionCookie("sess-123"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestCart_BearerTokenWinsOverCookie(t *testing.T) {
	ts := newTestServer(t)

	ts.cart.EXPECT().GetCart(mock.Anything, entity.CustomerIdentity(ts.customerID)).
		Return(&usecase.CartView{}, nil).Once()

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/cart", "", bearer(customerToken), sessionCookie("sess-123"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCart_InvalidTokenRejected(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/cart", "", bearer("forged"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestCart_AddItem(t *testing.T) {
	variantID := uuid.New()

	tests := []struct {
		name     string
		body     string
		setup    func(ts *testServer)
		wantCode int
		wantErr  string
	}{
		{
			name: "added",
			body: `{"variant_id":"` + variantID.String() + `","quantity":2}`,
			setup: func(ts *testServer) {
				ts.cart.EXPECT().AddItem(mock.Anything, entity.SessionIdentity("sess-1"), variantID, 2).
					Return(&usecase.CartView{ItemCount: 2}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "zero quantity fails validation",
			body:     `{"variant_id":"` + variantID.String() + `","quantity":0}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "malformed body",
			body:     `{"variant_id":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name: "insufficient stock",
			body: `{"variant_id":"` + variantID.String() + `","quantity":50}`,
			setup: func(ts *testServer) {
				ts.cart.EXPECT().AddItem(mock.Anything, mock.Anything, variantID, 50).
					Return(nil, errors.Wrap(domainerrors.ErrInsufficientStock, "add item")).Once()
			},
			wantCode: http.StatusConflict,
			wantErr:  "INSUFFICIENT_STOCK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rec, env := ts.do(t, http.MethodPost, "/api/v1/cart/items", tt.body, nil, sessionCookie("sess-1"))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}

func TestCart_ValidationDetailsNameFields(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/cart/items", `{"quantity":1}`, nil, sessionCookie("sess-1"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "variant_id")
}

func TestCart_UpdateAndRemove(t *testing.T) {
	ts := newTestServer(t)
	variantID := uuid.New()
	identity := entity.SessionIdentity("sess-1")

	ts.cart.EXPECT().UpdateItem(mock.Anything, identity, variantID, 0).Return(&usecase.CartView{}, nil).Once()
	ts.cart.EXPECT().RemoveItem(mock.Anything, identity, variantID).Return(&usecase.CartView{}, nil).Once()

	rec, _ := ts.do(t, http.MethodPut, "/api/v1/cart/items/"+variantID.String(), `{"quantity":0}`, nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodDelete, "/api/v1/cart/items/"+variantID.String(), "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := ts.do(t, http.MethodDelete, "/api/v1/cart/items/not-a-uuid", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestCart_SummaryNeedsRegion(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/cart/summary", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.cart.EXPECT().Summary(mock.Anything, entity.SessionIdentity("sess-1"), "Accra").
		Return(&usecase.CartSummary{Total: decimal.NewFromInt(270)}, nil).Once()

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/cart/summary?region=Accra", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

const checkoutBody = `{
	"name": "Ama Mensah",
	"email": "ama@example.com",
	"phone": "0241234567",
	"region": "Accra",
	"city": "Accra",
	"street": "12 Oxford St",
	"payment_method": "momo_mtn",
	"notes": "Call on arrival"
}`

func TestCheckout(t *testing.T) {
	ts := newTestServer(t)
	orderID := uuid.New()

	ts.checkout.EXPECT().Checkout(mock.Anything, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
		return in.Identity == entity.SessionIdentity("sess-1") &&
			in.PaymentMethod == entity.PaymentMethodMTN &&
			in.Contact.Email == "ama@example.com" &&
			in.Shipping.Region == "Accra" &&
			in.Notes == "Call on arrival" &&
			in.Meta.UserAgent != ""
	})).Return(&usecase.CheckoutResult{
		OrderID:       orderID,
		OrderNumber:   "IG-ABC-1234",
		PaymentMethod: entity.PaymentMethodMTN.Selector(),
		CheckoutURL:   "https://pay.example.com/c/1",
		Reference:     "PAY-IG-ABC-1234-1",
	}, nil).Once()

	rec, env := ts.do(t, http.MethodPost, "/api/v1/checkout", checkoutBody, map[string]string{"User-Agent": "test-agent"}, sessionCookie("sess-1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	var result usecase.CheckoutResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, orderID, result.OrderID)
	assert.Equal(t, "https://pay.example.com/c/1", result.CheckoutURL)
	assert.Contains(t, string(env.Data), `"payment_method":"momo_mtn"`)
}

func TestCheckout_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown payment method",
			body:     strings.Replace(checkoutBody, "momo_mtn", "paypal", 1),
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "bad email",
			body:     strings.Replace(checkoutBody, "ama@example.com", "not-an-email", 1),
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "empty cart",
			body:     checkoutBody,
			err:      domainerrors.ErrCartEmpty,
			wantCode: http.StatusBadRequest,
			wantErr:  "CART_EMPTY",
		},
		{
			name:     "storage failure",
			body:     checkoutBody,
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.err != nil {
				ts.checkout.EXPECT().Checkout(mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			}

			rec, env := ts.do(t, http.MethodPost, "/api/v1/checkout", tt.body, nil, sessionCookie("sess-1"))

			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestWebhook(t *testing.T) {
	payload := `{"Data":{"ClientReference":"PAY-1","Status":"Success","Amount":270}}`

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "processed", wantCode: http.StatusOK},
		{name: "bad signature", err: domainerrors.ErrInvalidSignature, wantCode: http.StatusUnauthorized},
		{name: "unknown reference", err: domainerrors.ErrPaymentNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.payment.EXPECT().SignatureHeaders().Return([]string{"Verif-Hash", "X-Hubtel-Signature"}).Once()

			call := ts.payment.EXPECT().HandleWebhook(mock.Anything, []byte(payload), "abc123").Once()
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&usecase.ReconcileResult{
					Outcome:   usecase.WebhookOutcomeProcessed,
					Reference: "PAY-1",
				}, nil)
			}

			rec, _ := ts.do(t, http.MethodPost, "/api/v1/payments/webhook", payload, map[string]string{"X-Hubtel-Signature": "abc123"})

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestOrders_GetUsesViewer(t *testing.T) {
	ts := newTestServer(t)
	orderID := uuid.New()

	ts.order.EXPECT().GetOrder(mock.Anything, orderID, usecase.Viewer{
		Identity: entity.CustomerIdentity(ts.customerID),
	}).Return(&entity.Order{ID: orderID}, nil).Once()
	ts.order.EXPECT().GetOrder(mock.Anything, orderID, usecase.Viewer{
		Identity:   entity.CustomerIdentity(ts.operatorID),
		IsOperator: true,
	}).Return(&entity.Order{ID: orderID}, nil).Once()

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), "", bearer(customerToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), "", bearer(operatorToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrders_ListRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/orders", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	ts.order.EXPECT().ListCustomerOrders(mock.Anything, ts.customerID, 100, 5).Return([]*entity.Order{}, nil).Once()

	rec, env = ts.do(t, http.MethodGet, "/api/v1/orders?limit=500&offset=5", "", bearer(customerToken))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
	require.NotNil(t, env.Meta.Page)
	assert.Equal(t, 100, env.Meta.Page.Limit)
	assert.Equal(t, 5, env.Meta.Page.Offset)
	assert.Equal(t, 0, env.Meta.Page.Count)
}

func TestAdmin_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	path := "/api/v1/admin/orders/" + orderID.String() + "/status"

	t.Run("requires token", func(t *testing.T) {
		ts := newTestServer(t)

		rec, _ := ts.do(t, http.MethodPut, path, `{"status":"DISPATCHED"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("customers are forbidden", func(t *testing.T) {
		ts := newTestServer(t)

		rec, env := ts.do(t, http.MethodPut, path, `{"status":"DISPATCHED"}`, bearer(customerToken))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		ts := newTestServer(t)

		rec, env := ts.do(t, http.MethodPut, path, `{"status":"LOST"}`, bearer(operatorToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STATUS", env.Error.Code)
	})

	t.Run("operator update", func(t *testing.T) {
		ts := newTestServer(t)

		ts.order.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateOrderStatusInput) bool {
			return in.OrderID == orderID &&
				in.Status == entity.OrderStatusDispatched &&
				in.OperatorID == ts.operatorID &&
				in.Note == "Rider picked up"
		})).Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDispatched}, nil).Once()

		rec, _ := ts.do(t, http.MethodPut, path, `{"status":"DISPATCHED","note":"Rider picked up"}`, bearer(operatorToken))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid transition", func(t *testing.T) {
		ts := newTestServer(t)

		ts.order.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidStatusTransition).Once()

		rec, env := ts.do(t, http.MethodPut, path, `{"status":"PAID"}`, bearer(operatorToken))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
	})
}

func TestPayments_RetryVerifyAndQR(t *testing.T) {
	ts := newTestServer(t)
	orderID := uuid.New()
	viewer := usecase.Viewer{Identity: entity.SessionIdentity("sess-1")}

	ts.payment.EXPECT().RetryPayment(mock.Anything, orderID, viewer, "").
		Return(&usecase.CheckoutResult{OrderID: orderID, Reference: "PAY-2"}, nil).Once()
	ts.payment.EXPECT().VerifyPayment(mock.Anything, "PAY-2", viewer).
		Return(&usecase.ReconcileResult{Outcome: usecase.WebhookOutcomeIgnored, Reference: "PAY-2"}, nil).Once()
	ts.payment.EXPECT().BankTransferQR(mock.Anything, orderID, viewer).
		Return([]byte("\x89PNG"), nil).Once()

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/payments", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/payments/PAY-2/verify", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/payments/qr", "", nil, sessionCookie("sess-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestDelivery_Quote(t *testing.T) {
	ts := newTestServer(t)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/delivery/quote?region=Accra&subtotal=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.delivery.EXPECT().Quote(mock.Anything, "Accra", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(250))
	})).Return(&entity.DeliveryQuote{Region: "Accra", Fee: decimal.NewFromInt(20)}, nil).Once()

	rec, env := ts.do(t, http.MethodGet, "/api/v1/delivery/quote?region=Accra&subtotal=250", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var quote entity.DeliveryQuote
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.True(t, quote.Fee.Equal(decimal.NewFromInt(20)))
}

func TestDevices_Register(t *testing.T) {
	ts := newTestServer(t)

	ts.device.EXPECT().RegisterDevice(mock.Anything, ts.customerID, &usecase.DeviceInfo{
		FCMToken: "fcm-1",
		DeviceID: "device-1",
		Platform: "android",
	}).Return(&entity.CustomerDevice{CustomerID: ts.customerID}, nil).Once()

	rec, _ := ts.do(t, http.MethodPost, "/api/v1/devices", `{"fcm_token":"fcm-1","device_id":"device-1","platform":"android"}`, bearer(customerToken))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/devices", `{"fcm_token":"fcm-1","device_id":"device-1","platform":"symbian"}`, bearer(customerToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
