package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// ChannelParams holds dependencies for the notification channels, injected by Fx.
type ChannelParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Channels are the outbound customer channels; an unconfigured channel is nil.
type Channels struct {
	fx.Out

	Push  service.NotificationService
	Email service.EmailSender
	SMS   service.SMSSender
}

// NewChannels builds every configured channel.
func NewChannels(params ChannelParams) (Channels, error) {
	push, err := newPushChannel(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return Channels{}, err
	}

	return Channels{
		Push:  push,
		Email: newEmailChannel(params.Config, params.Logger),
		SMS:   newSMSChannel(params.Config, params.Logger),
	}, nil
}

// Module provides the notification channels FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChannels),
)
