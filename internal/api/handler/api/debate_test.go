// internal/api/handler/api/debate_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/core"
)

type stubDebate struct {
	lastDate time.Time
}

func (s *stubDebate) Debate(ctx context.Context, sessionDate time.Time) ([]core.DebateMessage, core.Verdict) {
	s.lastDate = sessionDate
	return []core.DebateMessage{
			{ID: "opening-1", Speaker: core.SpeakerModerator, Topic: "opening", Text: "welcome"},
		}, core.Verdict{
			Headline: "stay cautious",
			Tone:     core.ToneCaution,
		}
}

func TestDebateHandler_Session(t *testing.T) {
	stub := &stubDebate{}
	handler := NewDebateHandler(stub)
	handler.now = func() time.Time {
		return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	}

	req := httptest.NewRequest("GET", "/api/v1/debate", nil)
	w := httptest.NewRecorder()

	handler.Session(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	data := resp.Data.(map[string]any)
	if data["date"] != "2026-08-30" {
		t.Errorf("date = %v", data["date"])
	}
	verdict := data["verdict"].(map[string]any)
	if verdict["tone"] != "caution" {
		t.Errorf("tone = %v", verdict["tone"])
	}
}

func TestDebateHandler_Session_ExplicitDate(t *testing.T) {
	stub := &stubDebate{}
	handler := NewDebateHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/debate?date=2026-01-15", nil)
	w := httptest.NewRecorder()

	handler.Session(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := stub.lastDate.Format("2006-01-02"); got != "2026-01-15" {
		t.Errorf("session date = %s", got)
	}
}

func TestDebateHandler_Session_BadDate(t *testing.T) {
	handler := NewDebateHandler(&stubDebate{})

	req := httptest.NewRequest("GET", "/api/v1/debate?date=yesterday", nil)
	w := httptest.NewRecorder()

	handler.Session(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
