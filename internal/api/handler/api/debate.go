// internal/api/handler/api/debate.go
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/core"
)

// DebateApp defines the interface needed from app.App.
type DebateApp interface {
	Debate(ctx context.Context, sessionDate time.Time) ([]core.DebateMessage, core.Verdict)
}

// DebateHandler serves the scripted session narrative.
type DebateHandler struct {
	app DebateApp
	now func() time.Time
}

// NewDebateHandler creates a new debate handler.
func NewDebateHandler(app DebateApp) *DebateHandler {
	return &DebateHandler{app: app, now: time.Now}
}

// DebatePayload is the script plus its verdict.
type DebatePayload struct {
	Date     string               `json:"date"`
	Messages []core.DebateMessage `json:"messages"`
	Verdict  core.Verdict         `json:"verdict"`
}

// Session serves GET /api/v1/debate. An optional date=YYYY-MM-DD query
// parameter fixes the session date; the default is now.
func (h *DebateHandler) Session(w http.ResponseWriter, r *http.Request) {
	at := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest,
				core.WrapError(core.ErrConfigInvalid, err))
			return
		}
		at = parsed
	}

	msgs, verdict := h.app.Debate(r.Context(), at)

	response.JSON(w, http.StatusOK, DebatePayload{
		Date:     at.Format("2006-01-02"),
		Messages: msgs,
		Verdict:  verdict,
	})
}
