// internal/fundamental/normalize.go
package fundamental

import (
	"math"

	"github.com/stocklight/stocklight/internal/core"
)

// PreRevenueFloor is the revenue level below which a company is treated as
// effectively pre-revenue, in upstream currency units.
const PreRevenueFloor = 1_000_000

// AnnualFigures is one fiscal year of reported income-statement figures.
type AnnualFigures struct {
	Year            string
	Revenue         *float64
	NetIncome       *float64
	OperatingIncome *float64
}

// Raw is the optional-field record assembled at the provider boundary.
// Every ratio arrives as a decimal fraction except DebtToEquity, which some
// sources report pre-multiplied by 100 (DebtToEquityIsPercent marks that).
type Raw struct {
	Ticker    string
	Name      string
	Price     float64
	ChangePct float64

	ROE             *float64
	OperatingMargin *float64
	NetMargin       *float64

	DebtToEquity          *float64
	DebtToEquityIsPercent bool
	CurrentRatio          *float64

	TrailingPE *float64
	ForwardPE  *float64
	PEG        *float64
	PB         *float64

	// Annual history, newest first.
	Annual []AnnualFigures
	// Quarterly history, newest first; may exceed four quarters.
	Quarters []core.QuarterFigures

	// Trailing-twelve-month aggregates, the fallback when history is absent.
	RevenueTTM   *float64
	NetIncomeTTM *float64

	EarningsGrowth *float64

	OperatingCashFlow *float64
	PreviousOCF       *float64
	CapEx             *float64 // conventionally negative
}

// Normalize produces the canonical metric set from a raw record.
//
// Revenue fallback order: annual history when at least two periods exist,
// then the TTM aggregate, then nil. A reported zero in annual history still
// wins over a nonzero aggregate: the chain is a strict ordering, not a
// value-dependent one.
func Normalize(raw *Raw) (*core.FinancialSnapshot, error) {
	if raw == nil {
		return nil, core.ErrTickerNotFound
	}

	s := &core.FinancialSnapshot{
		Ticker:    raw.Ticker,
		Name:      raw.Name,
		Price:     raw.Price,
		ChangePct: raw.ChangePct,

		ROE:             raw.ROE,
		OperatingMargin: raw.OperatingMargin,
		NetMargin:       raw.NetMargin,
		CurrentRatio:    raw.CurrentRatio,

		TrailingPE: raw.TrailingPE,
		ForwardPE:  raw.ForwardPE,
		PEG:        raw.PEG,
		PB:         raw.PB,

		OperatingCashFlow: raw.OperatingCashFlow,
		PreviousOCF:       raw.PreviousOCF,

		GrowthBasis: core.GrowthNone,
	}

	s.DebtToEquity = normalizeDebtRatio(raw.DebtToEquity, raw.DebtToEquityIsPercent)

	resolveRevenue(raw, s)
	resolveGrowth(raw, s)
	resolveEarnings(raw, s)

	if s.OperatingCashFlow != nil && raw.CapEx != nil {
		s.FreeCashFlow = core.Float(*s.OperatingCashFlow + *raw.CapEx)
	}

	if len(raw.Quarters) > 4 {
		s.Quarters = raw.Quarters[:4]
	} else {
		s.Quarters = raw.Quarters
	}

	s.PreRevenue = s.CurrentRevenue != nil && *s.CurrentRevenue < PreRevenueFloor
	s.Turnaround = isTurnaround(raw)

	return s, nil
}

// normalizeDebtRatio converts a pre-multiplied percentage exactly once.
func normalizeDebtRatio(v *float64, isPercent bool) *float64 {
	if v == nil {
		return nil
	}
	if isPercent {
		return core.Float(*v / 100)
	}
	return v
}

func resolveRevenue(raw *Raw, s *core.FinancialSnapshot) {
	if len(raw.Annual) >= 2 && raw.Annual[0].Revenue != nil {
		s.CurrentRevenue = raw.Annual[0].Revenue
		s.PreviousRevenue = raw.Annual[1].Revenue
		s.CurrentNetIncome = raw.Annual[0].NetIncome
		s.PreviousNetIncome = raw.Annual[1].NetIncome
		if raw.Annual[0].Year != "" && raw.Annual[1].Year != "" {
			s.PeriodLabel = raw.Annual[0].Year + " vs " + raw.Annual[1].Year
		}
		return
	}
	if raw.RevenueTTM != nil {
		s.CurrentRevenue = raw.RevenueTTM
		s.CurrentNetIncome = raw.NetIncomeTTM
		s.PeriodLabel = "TTM"
	}
}

// resolveGrowth applies the fallback chain: annual, then quarterly
// year-over-year (needs 5 quarters), then quarter-over-quarter.
func resolveGrowth(raw *Raw, s *core.FinancialSnapshot) {
	if g := growthRate(s.CurrentRevenue, s.PreviousRevenue); g != nil {
		s.RevenueGrowth = g
		s.GrowthBasis = core.GrowthAnnual
		return
	}
	if len(raw.Quarters) >= 5 {
		if g := growthRate(raw.Quarters[0].Revenue, raw.Quarters[4].Revenue); g != nil {
			s.RevenueGrowth = g
			s.GrowthBasis = core.GrowthQuarterYoY
			return
		}
	}
	if len(raw.Quarters) >= 2 {
		if g := growthRate(raw.Quarters[0].Revenue, raw.Quarters[1].Revenue); g != nil {
			s.RevenueGrowth = g
			s.GrowthBasis = core.GrowthQuarterQoQ
		}
	}
}

func resolveEarnings(raw *Raw, s *core.FinancialSnapshot) {
	if g := growthRate(s.CurrentNetIncome, s.PreviousNetIncome); g != nil {
		s.EarningsGrowth = g
		return
	}
	s.EarningsGrowth = raw.EarningsGrowth
}

// growthRate returns (current - previous) / |previous|, or nil whenever the
// rate cannot be derived from two real data points. A zero or absent
// previous value yields nil, never infinity and never a fabricated zero.
func growthRate(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}
	return core.Float((*current - *previous) / math.Abs(*previous))
}

// isTurnaround requires an annual loss and a profitable latest quarter,
// both at once.
func isTurnaround(raw *Raw) bool {
	if len(raw.Annual) == 0 || raw.Annual[0].NetIncome == nil {
		return false
	}
	if len(raw.Quarters) == 0 || raw.Quarters[0].NetIncome == nil {
		return false
	}
	return *raw.Annual[0].NetIncome < 0 && *raw.Quarters[0].NetIncome > 0
}
