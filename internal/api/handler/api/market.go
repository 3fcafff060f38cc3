// internal/api/handler/api/market.go
package api

import (
	"context"
	"net/http"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/core"
)

// MarketApp defines the interface needed from app.App.
type MarketApp interface {
	MarketState(ctx context.Context) core.MarketState
}

// MarketHandler serves the classified market snapshot.
type MarketHandler struct {
	app MarketApp
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(app MarketApp) *MarketHandler {
	return &MarketHandler{app: app}
}

// State serves GET /api/v1/market. The snapshot always succeeds; series
// that could not be fetched arrive with their documented defaults.
func (h *MarketHandler) State(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.app.MarketState(r.Context()))
}
