// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/clients"
	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/clients/acl"
	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/http"
	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/http/handlers"
	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/storage/csvstore"
	"github.com/Jaimeman84/daily-quotes-app/internal/app"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/config"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/logging"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/telemetry"
	"github.com/Jaimeman84/daily-quotes-app/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	// Also sets slog's default; FromContext falls back to this logger for
	// requests that carry no logger of their own.
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the instrumented HTTP client for the quote source
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Quotes.BaseURL,
		ServiceName: cfg.Quotes.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 7. Create the quote source adapter (ACL pattern)
	quoteClient := acl.NewQuotableClient(acl.QuotableClientConfig{
		Client:      httpClient,
		ServiceName: cfg.Quotes.Name,
		Logger:      logger,
	})

	if err := healthRegistry.Register(quoteClient); err != nil {
		return fmt.Errorf("registering quote client health check: %w", err)
	}

	// 8. Create the local favorites store
	store, err := csvstore.New(csvstore.Config{
		Path:   cfg.Store.Path,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating favorites store: %w", err)
	}

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering favorites store health check: %w", err)
	}

	// 9. Create application services
	quoteService := app.NewQuoteService(quoteClient, &app.QuoteServiceConfig{
		Logger:         logger,
		SourcePageSize: cfg.Quotes.SearchPageSize,
		MaxSourcePages: cfg.Quotes.MaxSearchPages,
	})

	favoritesService := app.NewFavoritesService(store, &app.FavoritesServiceConfig{
		Logger: logger,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)

	pagesHandler, err := handlers.NewPagesHandler(quoteService, favoritesService)
	if err != nil {
		return fmt.Errorf("parsing page templates: %w", err)
	}

	// 11. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 12. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:           logger,
		AppConfig:        &cfg.App,
		HealthHandler:    healthHandler,
		QuoteHandler:     quoteHandler,
		FavoritesHandler: favoritesHandler,
		PagesHandler:     pagesHandler,
		Timeout:          http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
