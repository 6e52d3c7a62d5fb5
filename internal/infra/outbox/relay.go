// Package outbox relays committed order events to the event transport.
package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// Relay polls unpublished outbox rows and publishes them at least once.
type Relay struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

// RelayParams holds dependencies for the Relay, injected by Fx
type RelayParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRelay creates an outbox relay.
func NewRelay(params RelayParams) *Relay {
	return &Relay{
		txManager: params.TxManager,
		publisher: params.Publisher,
		interval:  params.Config.Outbox.PollInterval,
		batchSize: params.Config.Outbox.BatchSize,
		logger:    params.Logger.With(slog.String("component", "outbox_relay")),
	}
}

// RunOnce publishes one batch. Rows are locked for the duration of the batch, so
// concurrent relays never publish the same row in the same tick.
func (r *Relay) RunOnce(ctx context.Context) (published int, err error) {
	err = r.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		outboxRepo := repos.OutboxRepo()

		events, err := outboxRepo.FetchUnpublished(ctx, r.batchSize)
		if err != nil {
			return errors.Wrap(err, "failed to fetch outbox events")
		}

		for _, row := range events {
			if ctx.Err() != nil {
				break
			}

			if pubErr := r.publish(ctx, row); pubErr != nil {
				r.logger.Warn("Outbox publish failed",
					slog.String("event_id", row.ID.String()),
					slog.String("event_type", row.EventType),
					slog.Int("attempts", row.Attempts+1),
					slog.Any("error", pubErr),
				)
				if err := outboxRepo.MarkAttemptFailed(ctx, row.ID, pubErr.Error()); err != nil {
					return errors.Wrap(err, "failed to record outbox attempt")
				}

				continue
			}

			if err := outboxRepo.MarkPublished(ctx, row.ID, time.Now()); err != nil {
				return errors.Wrap(err, "failed to mark outbox event published")
			}
			published++
		}

		return nil
	})

	return published, err
}

func (r *Relay) publish(ctx context.Context, row *entity.OutboxEvent) error {
	var event entity.OrderEvent
	if err := json.Unmarshal(row.Payload, &event); err != nil {
		return errors.Wrap(err, "malformed outbox payload")
	}

	return r.publisher.PublishOrderEvent(ctx, &event)
}

// Run polls until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		published, err := r.RunOnce(ctx)
		if err != nil && ctx.Err() == nil {
			r.logger.Error("Outbox relay tick failed", slog.Any("error", err))
		}
		if published > 0 {
			r.logger.Debug("Outbox events published", slog.Int("count", published))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// StartParams holds dependencies for starting the relay, injected by Fx
type StartParams struct {
	fx.In
	fx.Lifecycle

	Relay  *Relay
	Config *config.Config
	Logger *slog.Logger
}

// Start runs the relay in the background for the lifetime of the application.
func Start(params StartParams) {
	if !params.Config.Outbox.Enabled {
		params.Logger.Info("Outbox relay disabled")

		return
	}

	runCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				params.Relay.Run(runCtx)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return errors.Wrap(stopCtx.Err(), "outbox relay did not stop in time")
			}
		},
	})
}

// Module provides the outbox relay FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRelay),
	fx.Invoke(Start),
)
