package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqlFn() (string, int64) {
	return "SELECT * FROM orders", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.SlowQueryThreshold = 50 * time.Millisecond

	tests := []struct {
		name     string
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{
			name:  "fast query is quiet at warn level",
			begin: time.Now(),
			empty: true,
		},
		{
			name:     "slow query",
			begin:    time.Now().Add(-time.Second),
			contains: []string{"Slow query", "threshold=50ms"},
		},
		{
			name:  "record not found is ignored",
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
			empty: true,
		},
		{
			name:  "constraint failure names the constraint",
			begin: time.Now(),
			err: &pgconn.PgError{
				Code:           sqlStateUniqueViolation,
				ConstraintName: singleSuccessIndex,
			},
			contains: []string{"Query failed", "constraint=" + singleSuccessIndex},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, request bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), nil).LogMode(logger.Info)

	reqLogger := slog.New(slog.NewTextHandler(&request, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, request.String(), "request_id=req-7")
	assert.Contains(t, request.String(), "SELECT * FROM orders")
}
