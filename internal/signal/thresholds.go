// internal/signal/thresholds.go
package signal

import "github.com/stocklight/stocklight/internal/core"

// Band is a single metric's classification policy. Good and Bad are the
// band edges; direction decides which side of each edge wins.
type Band struct {
	Good           float64 `mapstructure:"good"`
	Bad            float64 `mapstructure:"bad"`
	HigherIsBetter bool    `mapstructure:"higher_is_better"`
}

// Classify applies the band to a value.
func (b Band) Classify(v float64) core.Status {
	return Classify(v, b.Good, b.Bad, b.HigherIsBetter)
}

// Thresholds is the single source of truth for every metric band. Both the
// classifier and the interpretation labels read from here so the two can
// never drift apart.
type Thresholds struct {
	ROE             Band `mapstructure:"roe"`
	OperatingMargin Band `mapstructure:"operating_margin"`
	NetMargin       Band `mapstructure:"net_margin"`
	DebtToEquity    Band `mapstructure:"debt_to_equity"`
	CurrentRatio    Band `mapstructure:"current_ratio"`
	RevenueGrowth   Band `mapstructure:"revenue_growth"`
	PE              Band `mapstructure:"pe"`
	PEG             Band `mapstructure:"peg"`
	PB              Band `mapstructure:"pb"`
}

// DefaultThresholds returns the stock band table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ROE:             Band{Good: 0.15, Bad: 0.05, HigherIsBetter: true},
		OperatingMargin: Band{Good: 0.10, Bad: 0.05, HigherIsBetter: true},
		NetMargin:       Band{Good: 0.10, Bad: 0.03, HigherIsBetter: true},
		DebtToEquity:    Band{Good: 0.50, Bad: 1.50, HigherIsBetter: false},
		CurrentRatio:    Band{Good: 1.50, Bad: 1.00, HigherIsBetter: true},
		RevenueGrowth:   Band{Good: 0.15, Bad: 0, HigherIsBetter: true},
		PE:              Band{Good: 40, Bad: 60, HigherIsBetter: false},
		PEG:             Band{Good: 1.0, Bad: 2.0, HigherIsBetter: false},
		PB:              Band{Good: 3.0, Bad: 10.0, HigherIsBetter: false},
	}
}
