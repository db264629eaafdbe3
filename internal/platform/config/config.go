package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// RocketMQConfig holds the event publisher settings. Publishing is disabled
// when NameServers is empty.
type RocketMQConfig struct {
	NameServers []string
	Topic       string
	Group       string
}

// Enabled reports whether events are published to RocketMQ.
func (c RocketMQConfig) Enabled() bool { return len(c.NameServers) > 0 }

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	StoreBackend   string
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	MarketAddress domain.Address // Operator account the market transfers from
	AdminAddress  domain.Address // Receives every role at startup; zero disables bootstrap
	SeedFile      string

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	Events RocketMQConfig

	PostHogAPIKey   string // Empty disables analytics capture
	PostHogEndpoint string

	WithdrawSweepSchedule string
	WithdrawSweepAddress  domain.Address
}

// SweepEnabled reports whether the scheduled withdrawal is configured.
func (c *Config) SweepEnabled() bool { return c.WithdrawSweepSchedule != "" }

// DurableStore reports whether market state survives a restart. The asset
// ledgers are always in-process, so with a durable store ownership and
// balances held there are rebuilt from the seed file while listings and
// prices persist.
func (c *Config) DurableStore() bool { return c.StoreBackend == StorePostgres }

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_BACKEND", StoreMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "xave-market")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("MARKET_ADDRESS", "")
	v.SetDefault("ADMIN_ADDRESS", "")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("EVENTS_ROCKETMQ_NAMESERVERS", "")
	v.SetDefault("EVENTS_ROCKETMQ_TOPIC", "xave-market-events")
	v.SetDefault("EVENTS_ROCKETMQ_GROUP", "xave-market")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("WITHDRAW_SWEEP_SCHEDULE", "")
	v.SetDefault("WITHDRAW_SWEEP_ADDRESS", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		StoreBackend:          strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		DatabaseURL:           v.GetString("PGSQL_URL"),
		EnableDBCheck:         v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		SeedFile:              v.GetString("SEED_FILE"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PostHogAPIKey:         v.GetString("POSTHOG_API_KEY"),
		PostHogEndpoint:       v.GetString("POSTHOG_ENDPOINT"),
		WithdrawSweepSchedule: strings.TrimSpace(v.GetString("WITHDRAW_SWEEP_SCHEDULE")),
		Events: RocketMQConfig{
			NameServers: splitList(v.GetString("EVENTS_ROCKETMQ_NAMESERVERS")),
			Topic:       v.GetString("EVENTS_ROCKETMQ_TOPIC"),
			Group:       v.GetString("EVENTS_ROCKETMQ_GROUP"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_BACKEND=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random"
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}

	expiry := v.GetString("JWT_EXPIRY_DURATION")
	d, err := time.ParseDuration(expiry)
	if err != nil {
		d = time.Hour
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", expiry), slog.String("default", d.String()))
	}
	cfg.JWTExpiryDuration = d

	if cfg.MarketAddress, err = requiredAddress(v, "MARKET_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.AdminAddress, err = optionalAddress(v, "ADMIN_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.AdminAddress.IsZero() && cfg.SeedFile != "" {
		return nil, fmt.Errorf("ADMIN_ADDRESS is required when SEED_FILE is set")
	}
	if cfg.AdminAddress.IsZero() {
		slog.Warn("ADMIN_ADDRESS not set. No account will hold any role at startup.")
	}

	if cfg.SweepEnabled() {
		if _, err := cron.ParseStandard(cfg.WithdrawSweepSchedule); err != nil {
			return nil, fmt.Errorf("invalid WITHDRAW_SWEEP_SCHEDULE %q: %w", cfg.WithdrawSweepSchedule, err)
		}
	}
	if cfg.WithdrawSweepAddress, err = optionalAddress(v, "WITHDRAW_SWEEP_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.SweepEnabled() && cfg.WithdrawSweepAddress.IsZero() {
		return nil, fmt.Errorf("WITHDRAW_SWEEP_ADDRESS is required when WITHDRAW_SWEEP_SCHEDULE is set")
	}

	return cfg, nil
}

func requiredAddress(v *viper.Viper, key string) (domain.Address, error) {
	addr, err := optionalAddress(v, key)
	if err != nil {
		return domain.ZeroAddress, err
	}
	if addr.IsZero() {
		return domain.ZeroAddress, fmt.Errorf("%s is required", key)
	}
	return addr, nil
}

func optionalAddress(v *viper.Viper, key string) (domain.Address, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return domain.ZeroAddress, nil
	}
	addr, err := domain.ParseAddress(raw)
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("invalid %s: %w", key, err)
	}
	return addr, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
