package payment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHubtel(serverURL string) service.PaymentGateway {
	return NewHubtelGateway(config.HubtelConfig{
		BaseURL:         serverURL + "/items/initiate",
		StatusURL:       serverURL + "/items",
		ClientID:        "client",
		ClientSecret:    "secret",
		MerchantAccount: "HM-1",
		WebhookSecret:   "whsec",
	}, config.PaymentsConfig{Timeout: 5 * time.Second})
}

func testInitRequest() *service.InitPaymentRequest {
	return &service.InitPaymentRequest{
		OrderID:     uuid.New(),
		Reference:   "PAY-IG-ABC-1",
		Amount:      decimal.RequireFromString("270"),
		Currency:    "GHS",
		Method:      entity.PaymentMethodMTN,
		Customer:    entity.ContactInfo{Name: "Ama Mensah", Email: "ama@example.com", Phone: "0201234567"},
		Description: "Order IG-ABC",
		CallbackURL: "https://shop.example.com/api/v1/payments/webhook",
		ReturnURL:   "https://shop.example.com/order/success?id=1",
	}
}

func TestHubtel_InitializePayment(t *testing.T) {
	var (
		gotBody map[string]any
		gotUser string
		gotPass string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/initiate", r.URL.Path)
		gotUser, gotPass, _ = r.BasicAuth()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		_, _ = w.Write([]byte(`{"responseCode":"0000","status":"Success","data":{"clientReference":"PAY-IG-ABC-1","checkoutUrl":"https://pay.hubtel.com/abc"}}`))
	}))
	defer server.Close()

	result, err := newTestHubtel(server.URL).InitializePayment(context.Background(), testInitRequest())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "PAY-IG-ABC-1", result.Reference)
	assert.Equal(t, "https://pay.hubtel.com/abc", result.CheckoutURL)

	assert.Equal(t, "client", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, 270.0, gotBody["totalAmount"])
	assert.Equal(t, "HM-1", gotBody["merchantAccountNumber"])
	assert.Equal(t, "PAY-IG-ABC-1", gotBody["clientReference"])
	assert.Equal(t, "https://shop.example.com/order/success?cancelled=true&id=1", gotBody["cancellationUrl"])
}

func TestHubtel_InitializePayment_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "business rejection", status: http.StatusOK, body: `{"responseCode":"2001","message":"Invalid merchant"}`, wantMessage: "Invalid merchant"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"upstream down"}`, wantMessage: "upstream down"},
		{name: "html error page", status: http.StatusBadGateway, body: `<html>bad gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			result, err := newTestHubtel(server.URL).InitializePayment(context.Background(), testInitRequest())

			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, "PAY-IG-ABC-1", result.Reference)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, result.Message)
			} else {
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestHubtel_InitializePayment_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	result, err := newTestHubtel(url).InitializePayment(context.Background(), testInitRequest())

	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestHubtel_InitializePayment_MissingCredentials(t *testing.T) {
	gateway := NewHubtelGateway(config.HubtelConfig{}, config.PaymentsConfig{})

	_, err := gateway.InitializePayment(context.Background(), testInitRequest())
	assert.Error(t, err)
}

func TestHubtel_VerifyPayment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus entity.ProviderStatus
	}{
		{name: "paid", body: `{"responseCode":"0000","data":{"status":"Paid","amount":270,"transactionId":"TX-9"}}`, wantStatus: entity.ProviderStatusSuccess},
		{name: "unpaid", body: `{"responseCode":"0000","data":{"status":"Unpaid","amount":270}}`, wantStatus: entity.ProviderStatusPending},
		{name: "failed", body: `{"responseCode":"0000","data":{"status":"Failed","amount":270}}`, wantStatus: entity.ProviderStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/items/PAY-IG-ABC-1/status", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			verification, err := newTestHubtel(server.URL).VerifyPayment(context.Background(), "PAY-IG-ABC-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, verification.Status)
			assert.True(t, decimal.NewFromInt(270).Equal(verification.Amount))
			assert.Equal(t, "PAY-IG-ABC-1", verification.Reference)
		})
	}
}

func TestHubtel_VerifyPayment_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestHubtel(server.URL).VerifyPayment(context.Background(), "PAY-IG-ABC-1")
	assert.Error(t, err)
}

func TestHubtel_ParseWebhookData(t *testing.T) {
	gateway := newTestHubtel("http://unused")

	tests := []struct {
		name    string
		payload string
		want    *service.WebhookData
		wantErr bool
	}{
		{
			name:    "pascal case",
			payload: `{"ClientReference":"PAY-1","Status":"Success","Amount":270.00,"TransactionId":"TX-1"}`,
			want:    &service.WebhookData{Reference: "PAY-1", Status: entity.ProviderStatusSuccess, RawStatus: "Success", Amount: decimal.NewFromInt(270), ProviderReference: "TX-1"},
		},
		{
			name:    "camel case",
			payload: `{"clientReference":"PAY-2","status":"Failed","amount":"12.5","transactionId":"TX-2"}`,
			want:    &service.WebhookData{Reference: "PAY-2", Status: entity.ProviderStatusFailed, RawStatus: "Failed", Amount: decimal.RequireFromString("12.5"), ProviderReference: "TX-2"},
		},
		{
			name:    "nested data",
			payload: `{"ResponseCode":"0000","Status":"Success","Data":{"ClientReference":"PAY-3","Amount":5,"TransactionId":"TX-3"}}`,
			want:    &service.WebhookData{Reference: "PAY-3", Status: entity.ProviderStatusSuccess, RawStatus: "Success", Amount: decimal.NewFromInt(5), ProviderReference: "TX-3"},
		},
		{name: "no reference", payload: `{"Status":"Success"}`, wantErr: true},
		{name: "not json", payload: `Status=Success`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gateway.ParseWebhookData([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Reference, got.Reference)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.RawStatus, got.RawStatus)
			assert.True(t, tt.want.Amount.Equal(got.Amount), "amount %s", got.Amount)
			assert.Equal(t, tt.want.ProviderReference, got.ProviderReference)
		})
	}
}

func TestHubtel_VerifyWebhookSignature(t *testing.T) {
	gateway := newTestHubtel("http://unused")
	payload := []byte(`{"ClientReference":"PAY-1","Status":"Success"}`)

	assert.True(t, gateway.VerifyWebhookSignature(payload, signHMACSHA256("whsec", payload)))
	assert.False(t, gateway.VerifyWebhookSignature(payload, signHMACSHA256("other", payload)))
	assert.False(t, gateway.VerifyWebhookSignature(payload, ""))
	assert.Equal(t, []string{"X-Hubtel-Signature"}, gateway.SignatureHeaders())
	assert.Equal(t, entity.PaymentProviderHubtel, gateway.Name())
}
