// internal/provider/yahoo/yahoo.go
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/fundamental"
	"github.com/stocklight/stocklight/internal/provider"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

const summaryModules = "price,financialData,defaultKeyStatistics,summaryDetail," +
	"incomeStatementHistory,incomeStatementHistoryQuarterly,cashflowStatementHistory"

// validSymbol matches symbols like AAPL, ^GSPC, BTC-USD, KRW=X, 005930.KS
var validSymbol = regexp.MustCompile(`^[\^]?[A-Za-z0-9=\-]{1,12}(\.[A-Za-z]{1,4})?$`)

func validateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if !validSymbol.MatchString(symbol) {
		return fmt.Errorf("invalid symbol format: %s", symbol)
	}
	return nil
}

// Client fetches quotes, price history and fundamentals from the Yahoo
// Finance JSON endpoints.
type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a client against the public endpoints.
func New() *Client {
	return NewWithBaseURL(defaultBaseURL)
}

// NewWithBaseURL creates a client against an alternate host. Used by
// tests to point at a local server.
func NewWithBaseURL(base string) *Client {
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: base,
	}
}

// FetchQuote returns the latest level and daily change for one symbol.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (core.IndexQuote, error) {
	if err := validateSymbol(symbol); err != nil {
		return core.IndexQuote{}, provider.TranslateOptional(err)
	}

	var result chartResponse
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, symbol)
	if err := c.getJSON(ctx, url, &result); err != nil {
		return core.IndexQuote{}, provider.TranslateOptional(err)
	}
	if result.Chart.Error != nil || len(result.Chart.Result) == 0 {
		return core.IndexQuote{}, provider.TranslateOptional(fmt.Errorf("no chart data for %s", symbol))
	}

	meta := result.Chart.Result[0].Meta
	q := core.IndexQuote{Level: meta.RegularMarketPrice}
	if meta.ChartPreviousClose > 0 {
		q.ChangePct = (meta.RegularMarketPrice - meta.ChartPreviousClose) / meta.ChartPreviousClose * 100
	}
	return q, nil
}

// FetchCloses returns daily closes, oldest first, over the lookback
// window. Gaps in the series (halted days) are skipped.
func (c *Client) FetchCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, provider.TranslateOptional(err)
	}

	var result chartResponse
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%dd", c.baseURL, symbol, days)
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, provider.TranslateOptional(err)
	}
	if result.Chart.Error != nil || len(result.Chart.Result) == 0 {
		return nil, provider.TranslateOptional(fmt.Errorf("no chart data for %s", symbol))
	}

	r := result.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, provider.TranslateOptional(fmt.Errorf("no close series for %s", symbol))
	}

	raw := r.Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			closes = append(closes, *v)
		}
	}
	return closes, nil
}

// FetchFundamentals returns the raw fundamentals record for one ticker.
// Yahoo reports debt-to-equity pre-multiplied by 100; the record carries
// that flag so the normalizer divides exactly once.
func (c *Client) FetchFundamentals(ctx context.Context, ticker string) (*fundamental.Raw, error) {
	if err := validateSymbol(ticker); err != nil {
		return nil, core.WrapError(core.ErrTickerNotFound, err)
	}

	var result summaryResponse
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s", c.baseURL, ticker, summaryModules)
	if err := c.getJSON(ctx, url, &result); err != nil {
		return nil, provider.TranslatePrimary(err)
	}
	if result.QuoteSummary.Error != nil {
		return nil, core.WrapError(core.ErrTickerNotFound,
			fmt.Errorf("yahoo: %s", result.QuoteSummary.Error.Description))
	}
	if len(result.QuoteSummary.Result) == 0 {
		return nil, core.WrapError(core.ErrTickerNotFound, fmt.Errorf("no summary for %s", ticker))
	}

	m := result.QuoteSummary.Result[0]
	raw := &fundamental.Raw{
		Ticker: ticker,

		ROE:             m.FinancialData.ReturnOnEquity.ptr(),
		OperatingMargin: m.FinancialData.OperatingMargins.ptr(),
		NetMargin:       m.FinancialData.ProfitMargins.ptr(),

		DebtToEquity:          m.FinancialData.DebtToEquity.ptr(),
		DebtToEquityIsPercent: true,
		CurrentRatio:          m.FinancialData.CurrentRatio.ptr(),

		TrailingPE: m.SummaryDetail.TrailingPE.ptr(),
		ForwardPE:  m.SummaryDetail.ForwardPE.ptr(),
		PEG:        m.DefaultKeyStatistics.PegRatio.ptr(),
		PB:         m.DefaultKeyStatistics.PriceToBook.ptr(),

		RevenueTTM:     m.FinancialData.TotalRevenue.ptr(),
		EarningsGrowth: m.FinancialData.EarningsGrowth.ptr(),

		OperatingCashFlow: m.FinancialData.OperatingCashflow.ptr(),
	}

	if p := m.Price.RegularMarketPrice.ptr(); p != nil {
		raw.Price = *p
	}
	// The price module reports the daily change as a fraction of 1.
	if p := m.Price.RegularMarketChangePercent.ptr(); p != nil {
		raw.ChangePct = *p * 100
	}

	for _, st := range m.IncomeStatementHistory.Statements {
		raw.Annual = append(raw.Annual, fundamental.AnnualFigures{
			Year:            fiscalLabel(st.EndDate.Fmt),
			Revenue:         st.TotalRevenue.ptr(),
			NetIncome:       st.NetIncome.ptr(),
			OperatingIncome: st.OperatingIncome.ptr(),
		})
	}
	for _, st := range m.IncomeStatementHistoryQuarterly.Statements {
		raw.Quarters = append(raw.Quarters, core.QuarterFigures{
			Period:          st.EndDate.Fmt,
			Revenue:         st.TotalRevenue.ptr(),
			NetIncome:       st.NetIncome.ptr(),
			OperatingIncome: st.OperatingIncome.ptr(),
		})
	}
	if len(m.CashflowStatementHistory.Statements) > 0 {
		cf := m.CashflowStatementHistory.Statements[0]
		raw.CapEx = cf.CapitalExpenditures.ptr()
		if raw.OperatingCashFlow == nil {
			raw.OperatingCashFlow = cf.TotalCashFromOperatingActivities.ptr()
		}
		if len(m.CashflowStatementHistory.Statements) > 1 {
			raw.PreviousOCF = m.CashflowStatementHistory.Statements[1].TotalCashFromOperatingActivities.ptr()
		}
	}

	return raw, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "stocklight/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.WrapError(core.ErrNoData, fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// fiscalLabel turns an end date like "2024-12-31" into "FY2024".
func fiscalLabel(endDate string) string {
	if len(endDate) >= 4 {
		return "FY" + endDate[:4]
	}
	return endDate
}

// Yahoo API response types. Numeric fields arrive wrapped, e.g.
// {"raw": 0.15, "fmt": "15.00%"}; an absent field decodes to a nil Raw.

type wrapped struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

func (w wrapped) ptr() *float64 { return w.Raw }

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type incomeStatement struct {
	EndDate struct {
		Fmt string `json:"fmt"`
	} `json:"endDate"`
	TotalRevenue    wrapped `json:"totalRevenue"`
	OperatingIncome wrapped `json:"operatingIncome"`
	NetIncome       wrapped `json:"netIncome"`
}

type cashflowStatement struct {
	EndDate struct {
		Fmt string `json:"fmt"`
	} `json:"endDate"`
	TotalCashFromOperatingActivities wrapped `json:"totalCashFromOperatingActivities"`
	CapitalExpenditures              wrapped `json:"capitalExpenditures"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				RegularMarketPrice         wrapped `json:"regularMarketPrice"`
				RegularMarketChangePercent wrapped `json:"regularMarketChangePercent"`
			} `json:"price"`
			FinancialData struct {
				ReturnOnEquity    wrapped `json:"returnOnEquity"`
				OperatingMargins  wrapped `json:"operatingMargins"`
				ProfitMargins     wrapped `json:"profitMargins"`
				DebtToEquity      wrapped `json:"debtToEquity"`
				CurrentRatio      wrapped `json:"currentRatio"`
				TotalRevenue      wrapped `json:"totalRevenue"`
				EarningsGrowth    wrapped `json:"earningsGrowth"`
				OperatingCashflow wrapped `json:"operatingCashflow"`
			} `json:"financialData"`
			SummaryDetail struct {
				TrailingPE wrapped `json:"trailingPE"`
				ForwardPE  wrapped `json:"forwardPE"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				PegRatio    wrapped `json:"pegRatio"`
				PriceToBook wrapped `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
			IncomeStatementHistory struct {
				Statements []incomeStatement `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			IncomeStatementHistoryQuarterly struct {
				Statements []incomeStatement `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistoryQuarterly"`
			CashflowStatementHistory struct {
				Statements []cashflowStatement `json:"cashflowStatements"`
			} `json:"cashflowStatementHistory"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}
