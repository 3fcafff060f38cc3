// internal/provider/dart/dart.go
package dart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/provider"
)

const defaultBaseURL = "https://opendart.fss.or.kr/api"

// Canonical account names resolved through Statement.Find. Filers vary in
// spelling and spacing, which the whitespace-stripping substring match
// absorbs.
var (
	AccountRevenue         = []string{"매출액", "수익(매출액)", "영업수익"}
	AccountOperatingIncome = []string{"영업이익", "영업이익(손실)"}
	AccountNetIncome       = []string{"당기순이익", "당기순이익(손실)"}
	AccountTotalEquity     = []string{"자본총계"}
	AccountTotalAssets     = []string{"자산총계"}
	AccountTotalLiability  = []string{"부채총계"}
)

// Client fetches annual financial statements from the DART open API.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

// New creates a client against the public endpoint.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL creates a client against an alternate host, for tests.
func NewWithBaseURL(apiKey, base string) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: base,
	}
}

// HasAPIKey reports whether the client can make authenticated calls.
func (c *Client) HasAPIKey() bool { return c.apiKey != "" }

// FetchStatement returns the filed line items for one company and fiscal
// year. Disclosure data is a secondary input, so every failure translates
// to partial data rather than a hard error.
func (c *Client) FetchStatement(ctx context.Context, corpCode string, year int) (*provider.Statement, error) {
	if c.apiKey == "" {
		return nil, core.WrapError(core.ErrConfigMissing, fmt.Errorf("dart: api_key is required"))
	}

	url := fmt.Sprintf("%s/fnlttSinglAcnt.json?crtfc_key=%s&corp_code=%s&bsns_year=%d&reprt_code=11011",
		c.baseURL, c.apiKey, corpCode, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, provider.TranslateOptional(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, provider.TranslateOptional(fmt.Errorf("dart: fetch statement failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, provider.TranslateOptional(fmt.Errorf("dart: unexpected status: %d", resp.StatusCode))
	}

	var result fnlttResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, provider.TranslateOptional(fmt.Errorf("dart: decode response failed: %w", err))
	}

	// "000" is success; "013" is no data for the requested year.
	if result.Status != "000" {
		return nil, provider.TranslateOptional(fmt.Errorf("dart: API error %s: %s", result.Status, result.Message))
	}

	st := &provider.Statement{CorpCode: corpCode, Year: year}
	for _, item := range result.List {
		// Prefer consolidated statements when both divisions are filed.
		if item.FSDiv == "OFS" && hasConsolidated(result.List, item.AccountName) {
			continue
		}
		amount, err := parseAmount(item.Amount)
		if err != nil {
			continue
		}
		st.Items = append(st.Items, provider.LineItem{Name: item.AccountName, Amount: amount})
	}
	if len(st.Items) == 0 {
		return nil, provider.TranslateOptional(fmt.Errorf("dart: no line items for %s year %d", corpCode, year))
	}
	return st, nil
}

// DART API response types.
type fnlttResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	List    []fnlttItem `json:"list"`
}

type fnlttItem struct {
	AccountName string `json:"account_nm"`
	Amount      string `json:"thstrm_amount"` // current term, e.g. "1,234,567"
	FSDiv       string `json:"fs_div"`        // CFS consolidated, OFS separate
}

func hasConsolidated(list []fnlttItem, name string) bool {
	for _, it := range list {
		if it.FSDiv == "CFS" && it.AccountName == name {
			return true
		}
	}
	return false
}

// parseAmount parses a comma-grouped signed integer amount.
func parseAmount(s string) (float64, error) {
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			cleaned = append(cleaned, s[i])
		}
	}
	return strconv.ParseFloat(string(cleaned), 64)
}
