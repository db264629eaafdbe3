package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	marketHex = "0x00000000000000000000000000000000000000a2"
	adminHex  = "0x00000000000000000000000000000000000000a1"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MARKET_ADDRESS", marketHex)
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.False(t, cfg.DurableStore())
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Empty(t, cfg.PostHogAPIKey)
	assert.Equal(t, "https://eu.i.posthog.com", cfg.PostHogEndpoint)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, marketHex, cfg.MarketAddress.String())
	assert.True(t, cfg.AdminAddress.IsZero())
	assert.False(t, cfg.Events.Enabled())
	assert.False(t, cfg.SweepEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MARKET_ADDRESS", marketHex)
	t.Setenv("ADMIN_ADDRESS", adminHex)
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("PGSQL_URL", "postgres://market@localhost/market")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("EVENTS_ROCKETMQ_NAMESERVERS", "127.0.0.1:9876")
	t.Setenv("WITHDRAW_SWEEP_SCHEDULE", "@every 1h")
	t.Setenv("WITHDRAW_SWEEP_ADDRESS", adminHex)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.StoreBackend)
	assert.True(t, cfg.DurableStore())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.Events.Enabled())
	assert.Equal(t, []string{"127.0.0.1:9876"}, cfg.Events.NameServers)
	assert.True(t, cfg.SweepEnabled())
	assert.Equal(t, adminHex, cfg.WithdrawSweepAddress.String())
	assert.Equal(t, adminHex, cfg.AdminAddress.String())
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing market address", map[string]string{"MARKET_ADDRESS": ""}},
		{"malformed market address", map[string]string{"MARKET_ADDRESS": "0x12"}},
		{"unknown backend", map[string]string{"STORE_BACKEND": "redis"}},
		{"postgres without url", map[string]string{"STORE_BACKEND": "postgres", "PGSQL_URL": ""}},
		{"bad sweep schedule", map[string]string{"WITHDRAW_SWEEP_SCHEDULE": "every day", "WITHDRAW_SWEEP_ADDRESS": adminHex}},
		{"sweep without recipient", map[string]string{"WITHDRAW_SWEEP_SCHEDULE": "@daily", "WITHDRAW_SWEEP_ADDRESS": ""}},
		{"seed without admin", map[string]string{"SEED_FILE": "seed.yaml", "ADMIN_ADDRESS": ""}},
		{"production without secret", map[string]string{"IS_PRODUCTION": "true", "JWT_SECRET": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MARKET_ADDRESS", marketHex)
			t.Setenv("STORE_BACKEND", StoreMemory)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
