// internal/api/handler/api/sectors.go
package api

import (
	"context"
	"net/http"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/core"
)

// SectorsApp defines the interface needed from app.App.
type SectorsApp interface {
	Sectors(ctx context.Context) []core.SectorRecord
	ValueChain(ctx context.Context) []core.ValueChainStage
}

// SectorsHandler serves sector heat and value-chain proof grades.
type SectorsHandler struct {
	app SectorsApp
}

// NewSectorsHandler creates a new sectors handler.
func NewSectorsHandler(app SectorsApp) *SectorsHandler {
	return &SectorsHandler{app: app}
}

// List serves GET /api/v1/sectors.
func (h *SectorsHandler) List(w http.ResponseWriter, r *http.Request) {
	recs := h.app.Sectors(r.Context())
	if recs == nil {
		recs = []core.SectorRecord{}
	}
	response.JSON(w, http.StatusOK, recs)
}

// ValueChain serves GET /api/v1/valuechain.
func (h *SectorsHandler) ValueChain(w http.ResponseWriter, r *http.Request) {
	stages := h.app.ValueChain(r.Context())
	if stages == nil {
		stages = []core.ValueChainStage{}
	}
	response.JSON(w, http.StatusOK, stages)
}
