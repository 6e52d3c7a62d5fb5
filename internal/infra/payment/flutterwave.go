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

const defaultFlutterwaveBaseURL = "https://api.flutterwave.com/v3"

type flutterwaveGateway struct {
	cfg       config.FlutterwaveConfig
	storeName string
	logoURL   string
	client    *jsonClient
}

// NewFlutterwaveGateway creates the Flutterwave standard checkout gateway.
func NewFlutterwaveGateway(cfg config.FlutterwaveConfig, paymentsCfg config.PaymentsConfig, storeName string) service.PaymentGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultFlutterwaveBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	logoURL := cfg.LogoURL
	if logoURL == "" && paymentsCfg.AppURL != "" {
		logoURL = strings.TrimRight(paymentsCfg.AppURL, "/") + "/logo.png"
	}

	return &flutterwaveGateway{
		cfg:       cfg,
		storeName: storeName,
		logoURL:   logoURL,
		client: newJSONClient(paymentsCfg.Timeout, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)
		}),
	}
}

type flutterwaveCustomer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber,omitempty"`
	Name        string `json:"name,omitempty"`
}

type flutterwaveCustomizations struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Logo        string `json:"logo,omitempty"`
}

type flutterwaveInitRequest struct {
	TxRef          string                    `json:"tx_ref"`
	Amount         json.Number               `json:"amount"`
	Currency       string                    `json:"currency"`
	RedirectURL    string                    `json:"redirect_url"`
	PaymentOptions string                    `json:"payment_options,omitempty"`
	Customer       flutterwaveCustomer       `json:"customer"`
	Customizations flutterwaveCustomizations `json:"customizations"`
	Meta           map[string]string         `json:"meta,omitempty"`
}

type flutterwaveResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// flutterwaveTransaction is the transaction shape shared by verify responses and webhook bodies.
type flutterwaveTransaction struct {
	ID     json.Number     `json:"id"`
	TxRef  string          `json:"tx_ref"`
	FlwRef string          `json:"flw_ref"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

func (t flutterwaveTransaction) providerReference() string {
	if t.FlwRef != "" {
		return t.FlwRef
	}

	return t.ID.String()
}

func (g *flutterwaveGateway) Name() string {
	return entity.PaymentProviderFlutterwave
}

func (g *flutterwaveGateway) InitializePayment(ctx context.Context, req *service.InitPaymentRequest) (*service.InitPaymentResult, error) {
	if g.cfg.SecretKey == "" {
		return nil, errors.New("flutterwave secret key is not configured")
	}

	meta := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	meta["order_id"] = req.OrderID.String()

	payload := flutterwaveInitRequest{
		TxRef:          req.Reference,
		Amount:         jsonAmount(req.Amount),
		Currency:       req.Currency,
		RedirectURL:    req.ReturnURL,
		PaymentOptions: flutterwavePaymentOptions(req.Method),
		Customer: flutterwaveCustomer{
			Email:       req.Customer.Email,
			PhoneNumber: req.Customer.Phone,
			Name:        req.Customer.Name,
		},
		Customizations: flutterwaveCustomizations{
			Title:       g.storeName,
			Description: req.Description,
			Logo:        g.logoURL,
		},
		Meta: meta,
	}

	var resp flutterwaveResponse
	if err := g.client.do(ctx, http.MethodPost, g.cfg.BaseURL+"/payments", payload, &resp); err != nil {
		return &service.InitPaymentResult{
			Success:   false,
			Reference: req.Reference,
			Message:   failureMessage(resp.Message, err),
		}, nil
	}

	if !strings.EqualFold(resp.Status, "success") {
		return &service.InitPaymentResult{
			Success:   false,
			Reference: req.Reference,
			Message:   failureMessage(resp.Message, nil),
		}, nil
	}

	var data struct {
		Link string `json:"link"`
	}
	if len(resp.Data) > 0 {
		_ = json.Unmarshal(resp.Data, &data)
	}

	return &service.InitPaymentResult{
		Success:     true,
		Reference:   req.Reference,
		CheckoutURL: data.Link,
	}, nil
}

func (g *flutterwaveGateway) VerifyPayment(ctx context.Context, reference string) (*service.PaymentVerification, error) {
	verifyURL := g.cfg.BaseURL + "/transactions/verify_by_reference?" + url.Values{"tx_ref": {reference}}.Encode()

	var resp flutterwaveResponse
	err := g.client.do(ctx, http.MethodGet, verifyURL, nil, &resp)

	// Flutterwave answers 404 until the customer has started paying
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return &service.PaymentVerification{
			Status:    entity.ProviderStatusPending,
			Reference: reference,
			Message:   failureMessage(resp.Message, nil),
		}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "flutterwave verify for %s", reference)
	}

	if !strings.EqualFold(resp.Status, "success") || len(resp.Data) == 0 {
		return &service.PaymentVerification{
			Status:    entity.ProviderStatusPending,
			Reference: reference,
			Message:   resp.Message,
		}, nil
	}

	var tx flutterwaveTransaction
	if err := json.Unmarshal(resp.Data, &tx); err != nil {
		return nil, errors.Wrap(err, "failed to decode flutterwave transaction")
	}

	return &service.PaymentVerification{
		Status:            entity.NormalizeProviderStatus(tx.Status),
		Amount:            tx.Amount,
		Reference:         reference,
		ProviderReference: tx.providerReference(),
		Message:           resp.Message,
	}, nil
}

func (g *flutterwaveGateway) SignatureHeaders() []string {
	return []string{"Verif-Hash", "X-Flutterwave-Signature"}
}

func (g *flutterwaveGateway) VerifyWebhookSignature(payload []byte, signature string) bool {
	secret := g.cfg.WebhookSecret
	if secret == "" {
		secret = g.cfg.SecretKey
	}

	return verifyHMACSHA256(secret, payload, signature)
}

func (g *flutterwaveGateway) ParseWebhookData(payload []byte) (*service.WebhookData, error) {
	var envelope struct {
		Event string                  `json:"event"`
		Data  *flutterwaveTransaction `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, errors.Wrap(err, "invalid flutterwave webhook body")
	}

	tx := envelope.Data
	if tx == nil {
		// Older webhook versions send the transaction at the top level
		tx = &flutterwaveTransaction{}
		if err := json.Unmarshal(payload, tx); err != nil {
			return nil, errors.Wrap(err, "invalid flutterwave webhook body")
		}
	}

	if tx.TxRef == "" {
		return nil, errors.New("flutterwave webhook has no tx_ref")
	}

	return &service.WebhookData{
		Reference:         tx.TxRef,
		Status:            entity.NormalizeProviderStatus(tx.Status),
		RawStatus:         tx.Status,
		Amount:            tx.Amount,
		ProviderReference: tx.providerReference(),
	}, nil
}

func flutterwavePaymentOptions(method entity.PaymentMethod) string {
	switch {
	case method.IsMobileMoney():
		return "mobilemoneyghana"
	case method == entity.PaymentMethodCard:
		return "card"
	case method == entity.PaymentMethodBankTransfer:
		return "banktransfer"
	default:
		return ""
	}
}
