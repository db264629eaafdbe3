package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/adapters/events"
	memledger "github.com/agarrido2001/XaveMarket/internal/adapters/ledger/memory"
	"github.com/agarrido2001/XaveMarket/internal/adapters/memory"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/agarrido2001/XaveMarket/internal/core/services"
	"github.com/agarrido2001/XaveMarket/internal/handlers"
	"github.com/agarrido2001/XaveMarket/internal/metrics"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/agarrido2001/XaveMarket/internal/platform/config"
	"github.com/agarrido2001/XaveMarket/internal/platform/seed"
	"github.com/agarrido2001/XaveMarket/internal/repositories/database/pgsql"
	"github.com/agarrido2001/XaveMarket/internal/scheduler"
	"github.com/agarrido2001/XaveMarket/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title XaveMarket API
// @version 1.0
// @description Marketplace settling item purchases against on-chain asset ledgers.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	m := metrics.New()

	hub := events.NewHub(logger, cfg.CORSAllowedOrigins)
	go hub.Run(ctx)

	sinks := events.Fanout{events.LogSink{}, hub}
	if cfg.Events.Enabled() {
		mq, err := events.NewRocketMQSink(events.RocketMQConfig{
			NameServers: cfg.Events.NameServers,
			Topic:       cfg.Events.Topic,
			Group:       cfg.Events.Group,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := mq.Close(); err != nil {
				logger.Error("Failed to close RocketMQ producer", slog.String("error", err.Error()))
			}
		}()
		sinks = append(sinks, mq)
		logger.Info("Publishing market events to RocketMQ", slog.String("topic", cfg.Events.Topic))
	}

	analytics, err := events.NewPostHogSink(events.PostHogConfig{
		APIKey:   cfg.PostHogAPIKey,
		Endpoint: cfg.PostHogEndpoint,
	}, logger)
	if err != nil {
		return err
	}
	if analytics != nil {
		defer analytics.Close()
		sinks = append(sinks, analytics)
	}

	// The asset ledgers run in-process; contracts and balances come from the seed file.
	ledger := memledger.NewLedger()
	warnVolatileLedger(cfg, logger)

	container := services.NewServiceContainer(services.Dependencies{
		Repos:    repos,
		Gateway:  ledger,
		Sink:     sinks,
		Observer: m,
		Market:   cfg.MarketAddress,
	})

	if !cfg.AdminAddress.IsZero() {
		if err := container.AccessControl.Bootstrap(ctx, cfg.AdminAddress); err != nil {
			return err
		}
		logger.Info("Admin roles granted", slog.String("admin", cfg.AdminAddress.String()))
	}

	if cfg.SeedFile != "" {
		f, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		seeder := &seed.Seeder{Services: container, Admin: cfg.AdminAddress, Market: cfg.MarketAddress, Ledger: ledger, Logger: logger}
		if err := seeder.Apply(ctx, f); err != nil {
			return err
		}
	}

	if cfg.SweepEnabled() {
		sweeper := scheduler.NewWithdrawSweeper(container.Settlement, cfg.WithdrawSweepAddress, m, logger)
		if err := sweeper.Start(cfg.WithdrawSweepSchedule); err != nil {
			return err
		}
		defer func() { <-sweeper.Stop().Done() }()
	}

	router, err := newRouter(cfg, logger, m)
	if err != nil {
		return err
	}
	handlers.RegisterRoutes(router, cfg, container, handlers.Extras{Events: hub, Metrics: m.Handler()})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// warnVolatileLedger flags the mixed setup where market state is durable but
// asset ownership is not.
func warnVolatileLedger(cfg *config.Config, logger *slog.Logger) {
	if !cfg.DurableStore() {
		return
	}
	logger.Warn("Asset ledgers are in-process: token ownership and balances reset on restart while listings and prices persist",
		slog.String("store", cfg.StoreBackend),
		slog.String("seed_file", cfg.SeedFile))
}

// openRepositories selects the store backend.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreBackend != config.StorePostgres {
		logger.Info("Using in-memory market store")
		return portsrepo.RepositoryProvider{
			MarketStore: memory.NewStore(),
			RoleRepo:    memory.NewRoleRepository(),
		}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	if err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), m.GinMiddleware())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	r.Use(middleware.RateLimit(limiterInstance))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	return r, nil
}
