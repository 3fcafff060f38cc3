// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handlers "github.com/stocklight/stocklight/internal/api/handler/api"
	"github.com/stocklight/stocklight/internal/api/middleware"
	"github.com/stocklight/stocklight/internal/app"
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/metrics"
)

// Server is the HTTP front of the service.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wires the handlers, middleware and routes. The metrics
// registry may be nil when metrics are disabled.
func NewServer(cfg *config.Config, application *app.App, reg *metrics.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	stocks := handlers.NewStocksHandler(application)
	market := handlers.NewMarketHandler(application)
	debate := handlers.NewDebateHandler(application)
	sectors := handlers.NewSectorsHandler(application)
	search := handlers.NewSearchHandler(application.Directory())

	// The v1 surface sits behind API-key auth; health and metrics do not.
	v1 := http.NewServeMux()
	v1.HandleFunc("GET /api/v1/stocks/{ticker}/signals", stocks.Signals)
	v1.HandleFunc("GET /api/v1/market", market.State)
	v1.HandleFunc("GET /api/v1/debate", debate.Session)
	v1.HandleFunc("GET /api/v1/sectors", sectors.List)
	v1.HandleFunc("GET /api/v1/valuechain", sectors.ValueChain)
	v1.HandleFunc("GET /api/v1/search", search.Search)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", middleware.APIKeyAuth(cfg.Server.APIKey)(v1))
	mux.HandleFunc("GET /api/health", handleHealth)
	if reg != nil && cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path,
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	var handler http.Handler = mux
	if reg != nil {
		handler = metrics.HTTPMiddleware(reg)(handler)
	}
	handler = metrics.LoggingMiddleware(logger)(handler)
	handler = middleware.RequestID()(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Handler exposes the composed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
