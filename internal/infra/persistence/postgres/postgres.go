package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval           = 5 * time.Second
	defaultPoolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the storefront database and ties its pool to the app lifecycle.
// Multi-step writes (checkout, settlement, status changes) go through the
// TxManager, so GORM's implicit per-statement transaction is switched off.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storefront database")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get storefront sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB, params.Config.Storage.PoolWaitWarnThreshold)
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping storefront database")
			}
			params.Logger.Info("Storefront database connected",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
			)
			monitor.start(poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			monitor.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor samples sql.DBStats and reports when requests had to queue for a
// connection, which under checkout load shows up before timeouts do.
type poolMonitor struct {
	logger        *slog.Logger
	db            *sql.DB
	warnThreshold time.Duration
	cancel        context.CancelFunc
	done          chan struct{}
}

func newPoolMonitor(logger *slog.Logger, db *sql.DB, warnThreshold time.Duration) *poolMonitor {
	if warnThreshold <= 0 {
		warnThreshold = defaultPoolWaitWarnThreshold
	}

	return &poolMonitor{
		logger:        logger,
		db:            db,
		warnThreshold: warnThreshold,
	}
}

func (m *poolMonitor) start(interval time.Duration) {
	if m.logger == nil || m.db == nil || m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		m.run(ctx, interval)
	}()
}

func (m *poolMonitor) stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

// report logs the wait observed between two samples. Quiet intervals log nothing.
func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	msg := "Storefront database pool wait observed"
	if waited >= m.warnThreshold {
		level = slog.LevelWarn
		msg = "Storefront database pool saturated"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Group("pool",
			slog.Int("max_open", cur.MaxOpenConnections),
			slog.Int("open", cur.OpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("idle", cur.Idle),
		),
	)
}
