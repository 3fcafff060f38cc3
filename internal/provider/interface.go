// internal/provider/interface.go
package provider

import (
	"context"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/fundamental"
)

// Config holds provider configuration.
type Config struct {
	Enabled bool
	APIKey  string
	BaseURL string
	Extra   map[string]any
}

// QuoteProvider supplies per-ticker fundamentals, index quotes and price
// history. Implementations translate their transport errors into the core
// taxonomy before returning; callers never see raw HTTP failures.
type QuoteProvider interface {
	// FetchFundamentals returns the raw optional-field record for one
	// ticker. A ticker the source does not know yields ErrTickerNotFound.
	FetchFundamentals(ctx context.Context, ticker string) (*fundamental.Raw, error)

	// FetchQuote returns the latest level and daily change for a symbol
	// (stocks, indices, futures, FX pairs alike).
	FetchQuote(ctx context.Context, symbol string) (core.IndexQuote, error)

	// FetchCloses returns daily closing prices, oldest first, covering up
	// to the requested number of calendar days back.
	FetchCloses(ctx context.Context, symbol string, days int) ([]float64, error)
}

// DisclosureProvider returns official filing line items by company
// identifier and fiscal year.
type DisclosureProvider interface {
	FetchStatement(ctx context.Context, corpCode string, year int) (*Statement, error)
}
