// internal/api/handler/api/sectors_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/core"
)

type stubSectors struct {
	records []core.SectorRecord
	stages  []core.ValueChainStage
}

func (s *stubSectors) Sectors(ctx context.Context) []core.SectorRecord {
	return s.records
}

func (s *stubSectors) ValueChain(ctx context.Context) []core.ValueChainStage {
	return s.stages
}

func TestSectorsHandler_List(t *testing.T) {
	stub := &stubSectors{records: []core.SectorRecord{
		{Sector: "semiconductor", Symbol: "SMH", Heat: core.HeatHot},
	}}
	handler := NewSectorsHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/sectors", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	list := resp.Data.([]any)
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
	rec := list[0].(map[string]any)
	if rec["heat"] != "hot" {
		t.Errorf("heat = %v", rec["heat"])
	}
}

func TestSectorsHandler_List_Empty(t *testing.T) {
	handler := NewSectorsHandler(&stubSectors{})

	req := httptest.NewRequest("GET", "/api/v1/sectors", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if _, ok := resp.Data.([]any); !ok {
		t.Errorf("expected an empty list, got %T", resp.Data)
	}
}

func TestSectorsHandler_ValueChain(t *testing.T) {
	stub := &stubSectors{stages: []core.ValueChainStage{
		{Stage: "fabrication", Symbol: "TSM", ProofStatus: core.ProofProven},
	}}
	handler := NewSectorsHandler(stub)

	req := httptest.NewRequest("GET", "/api/v1/valuechain", nil)
	w := httptest.NewRecorder()

	handler.ValueChain(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.SuccessResponse
	json.Unmarshal(w.Body.Bytes(), &resp)

	list := resp.Data.([]any)
	stage := list[0].(map[string]any)
	if stage["proof_status"] != "proven" {
		t.Errorf("proof_status = %v", stage["proof_status"])
	}
}
