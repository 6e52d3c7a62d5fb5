package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlutterwave(serverURL string) *flutterwaveGateway {
	return NewFlutterwaveGateway(config.FlutterwaveConfig{
		BaseURL:       serverURL,
		SecretKey:     "FLWSECK-test",
		WebhookSecret: "whsec",
	}, config.PaymentsConfig{AppURL: "https://shop.example.com"}, "Intact Ghana").(*flutterwaveGateway)
}

func TestFlutterwave_InitializePayment(t *testing.T) {
	var (
		gotAuth string
		gotBody flutterwaveInitRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		_, _ = w.Write([]byte(`{"status":"success","message":"Hosted Link","data":{"link":"https://checkout.flutterwave.com/v3/hosted/pay/abc"}}`))
	}))
	defer server.Close()

	req := testInitRequest()
	req.Metadata = map[string]string{"order_number": "IG-ABC"}
	result, err := newTestFlutterwave(server.URL).InitializePayment(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, req.Reference, result.Reference)
	assert.Equal(t, "https://checkout.flutterwave.com/v3/hosted/pay/abc", result.CheckoutURL)

	assert.Equal(t, "Bearer FLWSECK-test", gotAuth)
	assert.Equal(t, req.Reference, gotBody.TxRef)
	assert.Equal(t, json.Number("270.00"), gotBody.Amount)
	assert.Equal(t, "GHS", gotBody.Currency)
	assert.Equal(t, "mobilemoneyghana", gotBody.PaymentOptions)
	assert.Equal(t, "ama@example.com", gotBody.Customer.Email)
	assert.Equal(t, "Intact Ghana", gotBody.Customizations.Title)
	assert.Equal(t, "https://shop.example.com/logo.png", gotBody.Customizations.Logo)
	assert.Equal(t, "IG-ABC", gotBody.Meta["order_number"])
	assert.Equal(t, req.OrderID.String(), gotBody.Meta["order_id"])
}

func TestFlutterwave_InitializePayment_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Invalid currency"}`))
	}))
	defer server.Close()

	result, err := newTestFlutterwave(server.URL).InitializePayment(context.Background(), testInitRequest())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid currency", result.Message)
}

func TestFlutterwave_VerifyPayment(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  entity.ProviderStatus
		wantAmount  decimal.Decimal
		wantProvRef string
	}{
		{
			name:        "successful",
			status:      http.StatusOK,
			body:        `{"status":"success","data":{"id":4421,"tx_ref":"PAY-IG-ABC-1","flw_ref":"FLW-MOCK-1","status":"successful","amount":270}}`,
			wantStatus:  entity.ProviderStatusSuccess,
			wantAmount:  decimal.NewFromInt(270),
			wantProvRef: "FLW-MOCK-1",
		},
		{
			name:        "failed without flw_ref",
			status:      http.StatusOK,
			body:        `{"status":"success","data":{"id":4422,"tx_ref":"PAY-IG-ABC-1","status":"failed","amount":270}}`,
			wantStatus:  entity.ProviderStatusFailed,
			wantAmount:  decimal.NewFromInt(270),
			wantProvRef: "4422",
		},
		{
			name:       "not found yet",
			status:     http.StatusNotFound,
			body:       `{"status":"error","message":"No transaction was found for this id"}`,
			wantStatus: entity.ProviderStatusPending,
			wantAmount: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/transactions/verify_by_reference", r.URL.Path)
				assert.Equal(t, "PAY-IG-ABC-1", r.URL.Query().Get("tx_ref"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			verification, err := newTestFlutterwave(server.URL).VerifyPayment(context.Background(), "PAY-IG-ABC-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, verification.Status)
			assert.True(t, tt.wantAmount.Equal(verification.Amount))
			assert.Equal(t, tt.wantProvRef, verification.ProviderReference)
		})
	}
}

func TestFlutterwave_VerifyPayment_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestFlutterwave(server.URL).VerifyPayment(context.Background(), "PAY-IG-ABC-1")
	assert.Error(t, err)
}

func TestFlutterwave_ParseWebhookData(t *testing.T) {
	gateway := newTestFlutterwave("http://unused")

	nested := `{"event":"charge.completed","data":{"id":285959875,"tx_ref":"PAY-1","flw_ref":"FLW-1","amount":"270.00","status":"successful"}}`
	got, err := gateway.ParseWebhookData([]byte(nested))
	require.NoError(t, err)
	assert.Equal(t, "PAY-1", got.Reference)
	assert.Equal(t, entity.ProviderStatusSuccess, got.Status)
	assert.Equal(t, "successful", got.RawStatus)
	assert.True(t, decimal.NewFromInt(270).Equal(got.Amount))
	assert.Equal(t, "FLW-1", got.ProviderReference)

	flat := `{"id":77,"tx_ref":"PAY-2","amount":10,"status":"cancelled"}`
	got, err = gateway.ParseWebhookData([]byte(flat))
	require.NoError(t, err)
	assert.Equal(t, "PAY-2", got.Reference)
	assert.Equal(t, entity.ProviderStatusCancelled, got.Status)
	assert.Equal(t, "77", got.ProviderReference)

	_, err = gateway.ParseWebhookData([]byte(`{"event":"charge.completed","data":{"status":"successful"}}`))
	assert.Error(t, err)
	_, err = gateway.ParseWebhookData([]byte(`[`))
	assert.Error(t, err)
}

func TestFlutterwave_VerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"event":"charge.completed"}`)

	gateway := newTestFlutterwave("http://unused")
	assert.True(t, gateway.VerifyWebhookSignature(payload, signHMACSHA256("whsec", payload)))
	assert.False(t, gateway.VerifyWebhookSignature(payload, signHMACSHA256("FLWSECK-test", payload)))
	assert.False(t, gateway.VerifyWebhookSignature([]byte(`{"event":"tampered"}`), signHMACSHA256("whsec", payload)))

	// Falls back to the secret key when no dedicated webhook secret is set
	fallback := NewFlutterwaveGateway(config.FlutterwaveConfig{SecretKey: "FLWSECK-test"}, config.PaymentsConfig{}, "")
	assert.True(t, fallback.VerifyWebhookSignature(payload, signHMACSHA256("FLWSECK-test", payload)))

	assert.Equal(t, []string{"Verif-Hash", "X-Flutterwave-Signature"}, gateway.SignatureHeaders())
}

func TestFlutterwavePaymentOptions(t *testing.T) {
	assert.Equal(t, "mobilemoneyghana", flutterwavePaymentOptions(entity.PaymentMethodVodafone))
	assert.Equal(t, "card", flutterwavePaymentOptions(entity.PaymentMethodCard))
	assert.Equal(t, "banktransfer", flutterwavePaymentOptions(entity.PaymentMethodBankTransfer))
	assert.Empty(t, flutterwavePaymentOptions(entity.PaymentMethod("OTHER")))
}

func TestVerifyHMACSHA256(t *testing.T) {
	payload := []byte("body")
	sig := signHMACSHA256("secret", payload)

	assert.True(t, verifyHMACSHA256("secret", payload, sig))
	assert.True(t, verifyHMACSHA256("secret", payload, " "+sig+" "))
	assert.False(t, verifyHMACSHA256("", payload, signHMACSHA256("", payload)))
	assert.False(t, verifyHMACSHA256("secret", payload, sig[:10]))
}

func TestNewPaymentGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{provider: "", wantName: entity.PaymentProviderHubtel},
		{provider: "hubtel", wantName: entity.PaymentProviderHubtel},
		{provider: "FLUTTERWAVE", wantName: entity.PaymentProviderFlutterwave},
		{provider: "paystack", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Payments.Provider = tt.provider

			gateway, err := NewPaymentGateway(GatewayParams{Config: cfg, Logger: logger})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, gateway.Name())
		})
	}
}
