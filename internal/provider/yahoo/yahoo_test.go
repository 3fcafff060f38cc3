package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/fundamental"
	"github.com/stocklight/stocklight/internal/provider"
)

func TestClient_ImplementsQuoteProvider(t *testing.T) {
	var _ provider.QuoteProvider = (*Client)(nil)
}

func TestValidateSymbol(t *testing.T) {
	valid := []string{"AAPL", "^GSPC", "^VIX", "BTC-USD", "KRW=X", "005930.KS", "GC=F"}
	for _, s := range valid {
		if err := validateSymbol(s); err != nil {
			t.Errorf("validateSymbol(%s) = %v, want nil", s, err)
		}
	}
	invalid := []string{"", "AAPL;DROP", "way_too_long_symbol_name"}
	for _, s := range invalid {
		if err := validateSymbol(s); err == nil {
			t.Errorf("validateSymbol(%q) should fail", s)
		}
	}
}

const chartBody = `{"chart":{"result":[{
  "meta":{"symbol":"^GSPC","regularMarketPrice":6000,"chartPreviousClose":5940.6},
  "timestamp":[1,2,3],
  "indicators":{"quote":[{"close":[5900.0,null,6000.0]}]}
}],"error":null}}`

func TestFetchQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	q, err := c.FetchQuote(context.Background(), "^GSPC")
	if err != nil {
		t.Fatalf("FetchQuote: %v", err)
	}
	if q.Level != 6000 {
		t.Errorf("level = %v", q.Level)
	}
	if q.ChangePct < 0.99 || q.ChangePct > 1.01 {
		t.Errorf("change = %v, want ~1.0", q.ChangePct)
	}
}

func TestFetchCloses_SkipsGaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	closes, err := c.FetchCloses(context.Background(), "^GSPC", 5)
	if err != nil {
		t.Fatalf("FetchCloses: %v", err)
	}
	if len(closes) != 2 || closes[0] != 5900 || closes[1] != 6000 {
		t.Errorf("closes = %v, want [5900 6000]", closes)
	}
}

func TestFetchQuote_FailureIsPartialData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	_, err := c.FetchQuote(context.Background(), "^VIX")
	if !errors.Is(err, core.ErrPartialData) {
		t.Errorf("secondary fetch failure should read as partial data, got %v", err)
	}
}

const summaryBody = `{"quoteSummary":{"result":[{
  "price":{
    "regularMarketPrice":{"raw":255.5},
    "regularMarketChangePercent":{"raw":0.0123}
  },
  "financialData":{
    "returnOnEquity":{"raw":0.18},
    "operatingMargins":{"raw":0.25},
    "profitMargins":{"raw":0.21},
    "debtToEquity":{"raw":71.2},
    "currentRatio":{"raw":1.8},
    "totalRevenue":{"raw":390000000000},
    "earningsGrowth":{"raw":0.09},
    "operatingCashflow":{"raw":110000000000}
  },
  "summaryDetail":{"trailingPE":{"raw":32.5},"forwardPE":{"raw":28.1}},
  "defaultKeyStatistics":{"pegRatio":{"raw":2.4},"priceToBook":{"raw":45.0}},
  "incomeStatementHistory":{"incomeStatementHistory":[
    {"endDate":{"fmt":"2025-09-30"},"totalRevenue":{"raw":391000000000},"netIncome":{"raw":94000000000},"operatingIncome":{"raw":123000000000}},
    {"endDate":{"fmt":"2024-09-30"},"totalRevenue":{"raw":383000000000},"netIncome":{"raw":97000000000},"operatingIncome":{"raw":114000000000}}
  ]},
  "incomeStatementHistoryQuarterly":{"incomeStatementHistory":[
    {"endDate":{"fmt":"2025-09-30"},"totalRevenue":{"raw":94900000000},"netIncome":{"raw":14700000000}}
  ]},
  "cashflowStatementHistory":{"cashflowStatements":[
    {"endDate":{"fmt":"2025-09-30"},"totalCashFromOperatingActivities":{"raw":110500000000},"capitalExpenditures":{"raw":-10900000000}},
    {"endDate":{"fmt":"2024-09-30"},"totalCashFromOperatingActivities":{"raw":118200000000},"capitalExpenditures":{"raw":-9400000000}}
  ]}
}],"error":null}}`

func TestFetchFundamentals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/AAPL") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(summaryBody))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	raw, err := c.FetchFundamentals(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchFundamentals: %v", err)
	}

	if raw.Price != 255.5 {
		t.Errorf("price = %v, want 255.5", raw.Price)
	}
	if raw.ChangePct < 1.22 || raw.ChangePct > 1.24 {
		t.Errorf("change = %v, want ~1.23", raw.ChangePct)
	}
	if raw.ROE == nil || *raw.ROE != 0.18 {
		t.Errorf("ROE = %v", raw.ROE)
	}
	if !raw.DebtToEquityIsPercent || raw.DebtToEquity == nil || *raw.DebtToEquity != 71.2 {
		t.Errorf("debt ratio must carry the percent flag: %v %v", raw.DebtToEquity, raw.DebtToEquityIsPercent)
	}
	if len(raw.Annual) != 2 || raw.Annual[0].Year != "FY2025" {
		t.Errorf("annual history = %+v", raw.Annual)
	}
	if len(raw.Quarters) != 1 || raw.Quarters[0].Period != "2025-09-30" {
		t.Errorf("quarters = %+v", raw.Quarters)
	}
	if raw.CapEx == nil || *raw.CapEx != -10_900_000_000 {
		t.Errorf("capex = %v", raw.CapEx)
	}
	if raw.PreviousOCF == nil || *raw.PreviousOCF != 118_200_000_000 {
		t.Errorf("previous OCF = %v", raw.PreviousOCF)
	}

	// The record flows through the normalizer unchanged.
	snap, err := fundamental.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if snap.DebtToEquity == nil || *snap.DebtToEquity != 0.712 {
		t.Errorf("normalized debt ratio = %v, want 0.712", snap.DebtToEquity)
	}
	if snap.Price != 255.5 {
		t.Errorf("snapshot price = %v, want 255.5", snap.Price)
	}
}

func TestFetchFundamentals_UnknownTicker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found"}}}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL(srv.URL)
	_, err := c.FetchFundamentals(context.Background(), "ZZZZZZ")
	if !errors.Is(err, core.ErrTickerNotFound) {
		t.Errorf("unknown ticker should read as not-found, got %v", err)
	}
}
