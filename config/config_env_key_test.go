package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"payments": map[string]any{
			"hubtel": map[string]any{
				"clientId":      "",
				"webhookSecret": "",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PAYMENTS_HUBTEL_CLIENTID", want: "payments.hubtel.clientId"},
		{envKey: "PAYMENTS_HUBTEL_WEBHOOKSECRET", want: "payments.hubtel.webhookSecret"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_DecodesDecimalAndDurations(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
delivery:
  fallbackFee: "42.50"
cart:
  ttl: 24h
outbox:
  pollInterval: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.True(t, cfg.Delivery.FallbackFee.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, 24*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, 5*time.Second, cfg.Outbox.PollInterval)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Payments.Provider = "flutterwave"

	applyDefaults(cfg)

	assert.Equal(t, "FLUTTERWAVE", cfg.Payments.Provider)
	assert.Equal(t, "GHS", cfg.Payments.Currency)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 7*24*time.Hour, cfg.Cart.TTL)
	assert.True(t, cfg.Delivery.FallbackFee.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}
