// Package payment adapts external payment processors to service.PaymentGateway.
package payment

import (
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the PaymentGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway selects the configured provider once at startup.
func NewPaymentGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Payments

	var gateway service.PaymentGateway
	switch strings.ToUpper(cfg.Provider) {
	case entity.PaymentProviderHubtel, "":
		gateway = NewHubtelGateway(cfg.Hubtel, cfg)
		if cfg.Hubtel.WebhookSecret == "" {
			params.Logger.Warn("Hubtel webhook secret is empty, every callback will be rejected")
		}
	case entity.PaymentProviderFlutterwave:
		gateway = NewFlutterwaveGateway(cfg.Flutterwave, cfg, params.Config.Store.Name)
		if cfg.Flutterwave.WebhookSecret == "" && cfg.Flutterwave.SecretKey == "" {
			params.Logger.Warn("Flutterwave secrets are empty, every callback will be rejected")
		}
	default:
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Provider)
	}

	params.Logger.Info("Payment gateway selected", slog.String("provider", gateway.Name()))

	return gateway, nil
}

// Module provides the payment gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway),
)
