package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	defaultHubtelInitURL   = "https://payproxyapi.hubtel.com/items/initiate"
	defaultHubtelStatusURL = "https://payproxyapi.hubtel.com/items"
	hubtelSuccessCode      = "0000"
)

type hubtelGateway struct {
	cfg    config.HubtelConfig
	client *jsonClient
}

// NewHubtelGateway creates the Hubtel online checkout gateway. Requests use basic auth with the client credentials.
func NewHubtelGateway(cfg config.HubtelConfig, paymentsCfg config.PaymentsConfig) service.PaymentGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultHubtelInitURL
	}
	if cfg.StatusURL == "" {
		cfg.StatusURL = defaultHubtelStatusURL
	}

	return &hubtelGateway{
		cfg: cfg,
		client: newJSONClient(paymentsCfg.Timeout, func(req *http.Request) {
			req.SetBasicAuth(cfg.ClientID, cfg.ClientSecret)
		}),
	}
}

type hubtelInitRequest struct {
	TotalAmount           json.Number `json:"totalAmount"`
	Description           string      `json:"description"`
	CallbackURL           string      `json:"callbackUrl"`
	ReturnURL             string      `json:"returnUrl"`
	CancellationURL       string      `json:"cancellationUrl"`
	MerchantAccountNumber string      `json:"merchantAccountNumber"`
	ClientReference       string      `json:"clientReference"`
	PayeeName             string      `json:"payeeName,omitempty"`
	PayeeMobileNumber     string      `json:"payeeMobileNumber,omitempty"`
	PayeeEmail            string      `json:"payeeEmail,omitempty"`
}

type hubtelResponse struct {
	ResponseCode string          `json:"responseCode"`
	Status       string          `json:"status"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
}

type hubtelInitData struct {
	ClientReference   string `json:"clientReference"`
	CheckoutURL       string `json:"checkoutUrl"`
	CheckoutDirectURL string `json:"checkoutDirectUrl"`
}

type hubtelStatusData struct {
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	ClientReference string          `json:"clientReference"`
	TransactionID   string          `json:"transactionId"`
}

func (g *hubtelGateway) Name() string {
	return entity.PaymentProviderHubtel
}

func (g *hubtelGateway) InitializePayment(ctx context.Context, req *service.InitPaymentRequest) (*service.InitPaymentResult, error) {
	if g.cfg.ClientID == "" || g.cfg.ClientSecret == "" || g.cfg.MerchantAccount == "" {
		return nil, errors.New("hubtel credentials are not configured")
	}

	payload := hubtelInitRequest{
		TotalAmount:           jsonAmount(req.Amount),
		Description:           req.Description,
		CallbackURL:           req.CallbackURL,
		ReturnURL:             req.ReturnURL,
		CancellationURL:       appendQuery(req.ReturnURL, "cancelled", "true"),
		MerchantAccountNumber: g.cfg.MerchantAccount,
		ClientReference:       req.Reference,
		PayeeName:             req.Customer.Name,
		PayeeMobileNumber:     req.Customer.Phone,
		PayeeEmail:            req.Customer.Email,
	}

	var resp hubtelResponse
	if err := g.client.do(ctx, http.MethodPost, g.cfg.BaseURL, payload, &resp); err != nil {
		return &service.InitPaymentResult{
			Success:   false,
			Reference: req.Reference,
			Message:   failureMessage(resp.Message, err),
		}, nil
	}

	if resp.ResponseCode != hubtelSuccessCode && !strings.EqualFold(resp.Status, "success") {
		return &service.InitPaymentResult{
			Success:   false,
			Reference: req.Reference,
			Message:   failureMessage(resp.Message, nil),
		}, nil
	}

	var data hubtelInitData
	if len(resp.Data) > 0 {
		_ = json.Unmarshal(resp.Data, &data)
	}

	reference := data.ClientReference
	if reference == "" {
		reference = req.Reference
	}
	checkoutURL := data.CheckoutURL
	if checkoutURL == "" {
		checkoutURL = data.CheckoutDirectURL
	}

	return &service.InitPaymentResult{
		Success:     true,
		Reference:   reference,
		CheckoutURL: checkoutURL,
	}, nil
}

func (g *hubtelGateway) VerifyPayment(ctx context.Context, reference string) (*service.PaymentVerification, error) {
	statusURL := strings.TrimRight(g.cfg.StatusURL, "/") + "/" + url.PathEscape(reference) + "/status"

	var resp hubtelResponse
	if err := g.client.do(ctx, http.MethodGet, statusURL, nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "hubtel status lookup for %s", reference)
	}

	var data hubtelStatusData
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return nil, errors.Wrap(err, "failed to decode hubtel status data")
		}
	}

	raw := data.Status
	if raw == "" {
		raw = resp.Status
	}

	return &service.PaymentVerification{
		Status:            hubtelStatus(raw),
		Amount:            data.Amount,
		Reference:         reference,
		ProviderReference: data.TransactionID,
		Message:           resp.Message,
	}, nil
}

func (g *hubtelGateway) SignatureHeaders() []string {
	return []string{"X-Hubtel-Signature"}
}

func (g *hubtelGateway) VerifyWebhookSignature(payload []byte, signature string) bool {
	return verifyHMACSHA256(g.cfg.WebhookSecret, payload, signature)
}

// hubtelCallback accepts both the PascalCase callback body and the camelCase variant,
// with fields either at the top level or nested under Data.
type hubtelCallback struct {
	ClientReference string          `json:"ClientReference"`
	Status          string          `json:"Status"`
	Amount          decimal.Decimal `json:"Amount"`
	TransactionID   string          `json:"TransactionId"`
	Data            *hubtelCallback `json:"Data"`
}

func (g *hubtelGateway) ParseWebhookData(payload []byte) (*service.WebhookData, error) {
	var callback hubtelCallback
	if err := json.Unmarshal(payload, &callback); err != nil {
		return nil, errors.Wrap(err, "invalid hubtel callback body")
	}

	if callback.Data != nil {
		if callback.Status == "" {
			callback.Status = callback.Data.Status
		}
		if callback.ClientReference == "" {
			callback.ClientReference = callback.Data.ClientReference
		}
		if callback.Amount.IsZero() {
			callback.Amount = callback.Data.Amount
		}
		if callback.TransactionID == "" {
			callback.TransactionID = callback.Data.TransactionID
		}
	}

	if callback.ClientReference == "" {
		return nil, errors.New("hubtel callback has no client reference")
	}

	return &service.WebhookData{
		Reference:         callback.ClientReference,
		Status:            hubtelStatus(callback.Status),
		RawStatus:         callback.Status,
		Amount:            callback.Amount,
		ProviderReference: callback.TransactionID,
	}, nil
}

// hubtelStatus maps Hubtel's "Success"/"Paid"/"Unpaid"/"Failed"/"Cancelled" vocabulary.
func hubtelStatus(raw string) entity.ProviderStatus {
	if strings.EqualFold(strings.TrimSpace(raw), "unpaid") {
		return entity.ProviderStatusPending
	}

	return entity.NormalizeProviderStatus(raw)
}

func appendQuery(rawURL, key, value string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	query.Set(key, value)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

func failureMessage(providerMessage string, err error) string {
	if providerMessage != "" {
		return providerMessage
	}
	if err != nil {
		return "Failed to initialize payment: " + err.Error()
	}

	return "Payment initialization failed"
}
