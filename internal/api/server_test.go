// internal/api/server_test.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/stocklight/stocklight/internal/app"
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/fundamental"
	"github.com/stocklight/stocklight/internal/metrics"
	"github.com/stocklight/stocklight/internal/refdata"
)

// emptyProvider fails every fetch, which exercises the degraded paths.
type emptyProvider struct{}

func (emptyProvider) FetchFundamentals(ctx context.Context, ticker string) (*fundamental.Raw, error) {
	return nil, core.WrapError(core.ErrTickerNotFound, fmt.Errorf("no data for %s", ticker))
}

func (emptyProvider) FetchQuote(ctx context.Context, symbol string) (core.IndexQuote, error) {
	return core.IndexQuote{}, core.WrapError(core.ErrPartialData, nil)
}

func (emptyProvider) FetchCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	return nil, core.WrapError(core.ErrPartialData, nil)
}

func testServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Defaults()
	if mutate != nil {
		mutate(cfg)
	}
	a := app.New(cfg, emptyProvider{}, zap.NewNop())
	reg := metrics.NewRegistry()
	a.SetMetrics(reg)
	return NewServer(cfg, a, reg, zap.NewNop())
}

func TestServer_Health(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request identifier on the response")
	}
}

func TestServer_Metrics(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestServer_MarketEndpointSurvivesDegradedProviders(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/api/v1/market", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 from defaults-only snapshot, got %d", w.Code)
	}
}

func TestServer_UnknownTicker(t *testing.T) {
	s := testServer(t, nil)

	req := httptest.NewRequest("GET", "/api/v1/stocks/ZZZZ/signals", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestServer_AuthGuardsV1Only(t *testing.T) {
	s := testServer(t, func(cfg *config.Config) {
		cfg.Server.APIKey = "secret"
	})

	req := httptest.NewRequest("GET", "/api/v1/market", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("v1 without key: expected 401, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/v1/market", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("v1 with key: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/health", nil)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("health must not require a key, got %d", w.Code)
	}
}

func TestServer_Search(t *testing.T) {
	s := testServer(t, func(cfg *config.Config) {
		cfg.Universe = append(cfg.Universe, refdata.Entry{Ticker: "NVDA", Name: "NVIDIA"})
	})

	req := httptest.NewRequest("GET", "/api/v1/search?q=nvidia", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
