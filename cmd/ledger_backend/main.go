package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/adapters/events"
	"github.com/SscSPs/ledger_posting_engine/internal/adapters/numbering"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/core/services"
	"github.com/SscSPs/ledger_posting_engine/internal/handlers"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/SscSPs/ledger_posting_engine/internal/platform/config"
	"github.com/SscSPs/ledger_posting_engine/internal/platform/logger"
	"github.com/SscSPs/ledger_posting_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_posting_engine/internal/repositories/memory"
	"github.com/SscSPs/ledger_posting_engine/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	migrationsPath  = "file://migrations"
	shutdownTimeout = 15 * time.Second
	healthTimeout   = 2 * time.Second
)

// @title Ledger Posting Engine API
// @version 1.0
// @description Double-entry journals, posting and voiding over an org-scoped chart of accounts.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.IsProduction, cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Server exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	var (
		repos  portsrepo.RepositoryProvider
		pool   *pgxpool.Pool
		checks []handlers.HealthCheck
	)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		log.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, migrationsPath)
		if err != nil {
			return err
		}
		if applied {
			log.Info("Database migrations applied successfully.")
		} else {
			log.Info("No new migrations to apply.")
		}

		pool, err = database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MaxConnLifetime: time.Hour,
			Ping:            cfg.EnableDBCheck,
		})
		if err != nil {
			return err
		}
		defer pool.Close()
		log.Info("Database connection pool established.")

		repos = pgsql.NewRepositoryProvider(pool)
		checks = append(checks, func() (string, bool) {
			pingCtx, cancel := context.WithTimeout(context.Background(), healthTimeout)
			defer cancel()
			return "postgres", pool.Ping(pingCtx) == nil
		})
	case config.DriverMemory:
		log.Warn("Using in-memory ledger store; data is lost on restart.")
		repos = memory.NewStore().Provider()
	}

	counter, closeCounter, err := newCounter(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer closeCounter()

	breaker := numbering.NewBreakerCounter("journal-numbering", counter, numbering.DefaultBreakerSettings, log)
	checks = append(checks, func() (string, bool) {
		return "numbering", breaker.State() != gobreaker.StateOpen
	})

	publisher, closePublisher, err := newPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer closePublisher()

	svc := services.NewContainer(repos,
		numbering.NewService(breaker, cfg.JournalNumberPrefix),
		services.WithEventPublisher(publisher),
		services.WithFiscalYearStartMonth(cfg.FiscalYearStartMonth),
		services.WithPostingTimeout(cfg.PostingTimeout),
	)

	rateLimiter, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(log), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	handlers.RegisterRoutes(r, cfg, svc, rateLimiter, checks...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreDriver),
			zap.String("numbering", cfg.NumberingDriver),
		)
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

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCounter picks the journal number sequence backend.
func newCounter(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (numbering.Counter, func(), error) {
	switch cfg.NumberingDriver {
	case config.DriverPostgres:
		return pgsql.NewPgxNumberSequenceRepository(pool), func() {}, nil
	case config.DriverRedis:
		client, err := numbering.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return numbering.NewRedisCounter(client), func() { _ = client.Close() }, nil
	default:
		return numbering.NewMemoryCounter(), func() {}, nil
	}
}

// newPublisher uses RabbitMQ when configured and falls back to logging events.
func newPublisher(cfg *config.Config, log *zap.Logger) (portssvc.EventPublisher, func(), error) {
	if cfg.RabbitMQURL == "" {
		return events.NewLogPublisher(log), func() {}, nil
	}
	pub, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Publishing journal events to RabbitMQ", zap.String("exchange", cfg.EventsExchange))
	return pub, func() {
		if err := pub.Close(); err != nil {
			log.Warn("Failed to close event publisher", zap.Error(err))
		}
	}, nil
}
