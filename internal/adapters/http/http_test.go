package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/http/handlers"
	"github.com/Jaimeman84/daily-quotes-app/internal/app"
	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
	"github.com/Jaimeman84/daily-quotes-app/internal/mocks"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/config"
	"github.com/Jaimeman84/daily-quotes-app/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestServerNew tests creating a new HTTP server.
func TestServerNew(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           8080,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.engine)
	assert.NotNil(t, srv.httpServer)
	assert.Equal(t, cfg, srv.config)
	assert.Equal(t, logger, srv.logger)
}

// TestServerEngine tests getting the underlying Gin engine.
func TestServerEngine(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:           "localhost",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}

	srv := New(cfg, discardLogger())
	engine := srv.Engine()

	require.NotNil(t, engine)
	assert.IsType(t, &gin.Engine{}, engine)
}

// TestServerAddr tests the server address formatting.
func TestServerAddr(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		port         int
		expectedAddr string
	}{
		{
			name:         "localhost with port 8080",
			host:         "localhost",
			port:         8080,
			expectedAddr: "localhost:8080",
		},
		{
			name:         "0.0.0.0 with port 3000",
			host:         "0.0.0.0",
			port:         3000,
			expectedAddr: "0.0.0.0:3000",
		},
		{
			name:         "127.0.0.1 with port 0",
			host:         "127.0.0.1",
			port:         0,
			expectedAddr: "127.0.0.1:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ServerConfig{
				Host:           tt.host,
				Port:           tt.port,
				ReadTimeout:    5 * time.Second,
				WriteTimeout:   10 * time.Second,
				IdleTimeout:    30 * time.Second,
				MaxRequestSize: 1 << 20,
			}

			srv := New(cfg, discardLogger())

			assert.Equal(t, tt.expectedAddr, srv.Addr())
		})
	}
}

// TestServerStartShutdown tests starting and stopping the server.
func TestServerStartShutdown(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0, // Use port 0 for dynamic port allocation
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}

	srv := New(cfg, discardLogger())

	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	errCh := srv.Start()

	// Give server time to start
	time.Sleep(100 * time.Millisecond)

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("server start error: %v", err)
		}
	default:
		// No error, server is running
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := srv.Shutdown(ctx)
	require.NoError(t, err)

	// Verify error channel is closed
	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

// newTestRouterConfig wires a full RouterConfig over mocked dependencies.
func newTestRouterConfig(t *testing.T, client *mocks.MockQuoteClient, store *mocks.MockFavoritesStore) RouterConfig {
	t.Helper()

	logger := discardLogger()

	quoteSvc := app.NewQuoteService(client, &app.QuoteServiceConfig{Logger: logger})
	favSvc := app.NewFavoritesService(store, &app.FavoritesServiceConfig{Logger: logger})

	pages, err := handlers.NewPagesHandler(quoteSvc, favSvc)
	require.NoError(t, err)

	return RouterConfig{
		Logger:           logger,
		AppConfig:        &config.AppConfig{Name: "daily-quotes-test", Environment: "test", Version: "test"},
		HealthHandler:    handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{Version: "test"}),
		QuoteHandler:     handlers.NewQuoteHandler(quoteSvc),
		FavoritesHandler: handlers.NewFavoritesHandler(favSvc),
		PagesHandler:     pages,
		Timeout:          5 * time.Second,
	}
}

// TestSetupRouter_RegistersAllRoutes tests setting up the full router.
func TestSetupRouter_RegistersAllRoutes(t *testing.T) {
	engine := gin.New()
	cfg := newTestRouterConfig(t, mocks.NewMockQuoteClient(t), mocks.NewMockFavoritesStore(t))

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})

	expected := []string{
		"/-/live",
		"/-/ready",
		"/-/build",
		"/-/metrics",
		"/",
		"/search",
		"/saved",
		"/favorites",
		"/api/v1/quotes/random",
		"/api/v1/quotes/search",
		"/api/v1/authors",
		"/api/v1/favorites",
	}

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Path] = true
	}

	for _, path := range expected {
		assert.True(t, registered[path], "route %s should be registered", path)
	}
}

// TestSetupRouter_RandomQuoteEndToEnd drives a JSON request through the router.
func TestSetupRouter_RandomQuoteEndToEnd(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	client.EXPECT().GetRandomQuote(mock.Anything).Return(&domain.Quote{
		ID:      "q-1",
		Content: "Know thyself.",
		Author:  "Socrates",
	}, nil)

	engine := gin.New()
	SetupRouter(engine, newTestRouterConfig(t, client, mocks.NewMockFavoritesStore(t)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Know thyself.")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// TestSetupRouter_HomePageRendersQuote drives an HTML request through the router.
func TestSetupRouter_HomePageRendersQuote(t *testing.T) {
	client := mocks.NewMockQuoteClient(t)
	client.EXPECT().GetRandomQuote(mock.Anything).Return(&domain.Quote{
		Content: "Know thyself.",
		Author:  "Socrates",
	}, nil)

	engine := gin.New()
	SetupRouter(engine, newTestRouterConfig(t, client, mocks.NewMockFavoritesStore(t)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Know thyself.")
}

// TestSetupRouterWithNilHealthHandler tests router setup with nil handlers.
func TestSetupRouterWithNilHealthHandler(t *testing.T) {
	engine := gin.New()

	cfg := RouterConfig{
		Logger:    discardLogger(),
		AppConfig: &config.AppConfig{Name: "test-service", Environment: "test", Version: "1.0.0"},
		Timeout:   30 * time.Second,
	}

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})
}

// TestSetupMinimalRouter tests setting up a minimal router with health endpoints.
func TestSetupMinimalRouter(t *testing.T) {
	engine := gin.New()
	healthHandler := handlers.NewHealthHandler(nil, handlers.BuildInfo{
		Version: "1.0.0",
	})

	SetupMinimalRouter(engine, discardLogger(), healthHandler)

	routes := engine.Routes()
	assert.NotEmpty(t, routes)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestSetupMinimalRouterWithNilHandler tests minimal router with nil health handler.
func TestSetupMinimalRouterWithNilHandler(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupMinimalRouter(engine, discardLogger(), nil)
	})
}

// TestMaxBodySizeMiddleware tests the max request body size middleware.
func TestMaxBodySizeMiddleware(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 100, // Small size for testing
	}

	srv := New(cfg, discardLogger())

	srv.Engine().POST("/test", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	t.Run("body under limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"content":"short"}`))
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("body over limit is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("x", 200)))
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
