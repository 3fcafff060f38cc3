// internal/api/handler/api/stocks.go
package api

import (
	"context"
	"net/http"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/app"
)

// StocksApp defines the interface needed from app.App.
type StocksApp interface {
	StockReport(ctx context.Context, query string) (*app.StockReport, error)
}

// StocksHandler serves per-ticker signal reports.
type StocksHandler struct {
	app StocksApp
}

// NewStocksHandler creates a new stocks handler.
func NewStocksHandler(app StocksApp) *StocksHandler {
	return &StocksHandler{app: app}
}

// Signals serves GET /api/v1/stocks/{ticker}/signals. The path segment may
// be a ticker, a display name or an alias.
func (h *StocksHandler) Signals(w http.ResponseWriter, r *http.Request) {
	ticker := r.PathValue("ticker")

	report, err := h.app.StockReport(r.Context(), ticker)
	if err != nil {
		response.Error(w, response.Status(err), err)
		return
	}

	response.JSON(w, http.StatusOK, report)
}
