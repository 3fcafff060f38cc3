// internal/signal/classify.go
package signal

import "github.com/stocklight/stocklight/internal/core"

// Reason labels attached to signals when an override fires.
const (
	ReasonPreRevenue  = "pre-revenue"
	ReasonTurnaround  = "turnaround-in-progress"
	ReasonNegativeOCF = "negative-operating-cash-flow"
	ReasonNegativePE  = "negative-earnings"
	ReasonNoData      = "data-unavailable"
)

// Classify maps a value into a three-level status. With higherIsBetter,
// value >= good is good and value <= bad is bad; with lower-is-better
// metrics (debt ratio, P/E) the comparisons flip.
func Classify(value, good, bad float64, higherIsBetter bool) core.Status {
	if higherIsBetter {
		switch {
		case value >= good:
			return core.StatusGood
		case value <= bad:
			return core.StatusBad
		default:
			return core.StatusNormal
		}
	}
	switch {
	case value <= good:
		return core.StatusGood
	case value >= bad:
		return core.StatusBad
	default:
		return core.StatusNormal
	}
}

// Engine computes signal sets and metric cards from normalized snapshots.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates a classification engine with the given band table.
func NewEngine(t Thresholds) *Engine {
	return &Engine{thresholds: t}
}

// Thresholds returns the engine's band table.
func (e *Engine) Thresholds() Thresholds { return e.thresholds }

// Compute derives the four-dimension signal set from a snapshot.
//
// Override precedence, highest first: pre-revenue forces earning and growth
// to normal; negative operating cash flow forces earning to bad; turnaround
// forces earning and growth to normal with a watch label; a negative P/E
// forces valuation to normal. Only then does the band table apply.
func (e *Engine) Compute(s *core.FinancialSnapshot) core.SignalResult {
	if s == nil {
		return core.SignalResult{}
	}
	return core.SignalResult{
		Earning:   e.earningSignal(s),
		Debt:      e.debtSignal(s),
		Growth:    e.growthSignal(s),
		Valuation: e.valuationSignal(s),
	}
}

func (e *Engine) earningSignal(s *core.FinancialSnapshot) core.Signal {
	if s.PreRevenue {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonPreRevenue}
	}
	if s.OperatingCashFlow != nil && *s.OperatingCashFlow < 0 {
		return core.Signal{Status: core.StatusBad, Reason: ReasonNegativeOCF}
	}
	if s.Turnaround {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonTurnaround}
	}
	if s.ROE == nil {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonNoData}
	}
	return core.Signal{Status: e.thresholds.ROE.Classify(*s.ROE)}
}

func (e *Engine) debtSignal(s *core.FinancialSnapshot) core.Signal {
	if s.DebtToEquity == nil {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonNoData}
	}
	return core.Signal{Status: e.thresholds.DebtToEquity.Classify(*s.DebtToEquity)}
}

func (e *Engine) growthSignal(s *core.FinancialSnapshot) core.Signal {
	if s.PreRevenue {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonPreRevenue}
	}
	if s.Turnaround {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonTurnaround}
	}
	if s.RevenueGrowth == nil {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonNoData}
	}
	return core.Signal{Status: e.thresholds.RevenueGrowth.Classify(*s.RevenueGrowth)}
}

func (e *Engine) valuationSignal(s *core.FinancialSnapshot) core.Signal {
	pe := s.TrailingPE
	if pe == nil {
		pe = s.ForwardPE
	}
	if pe == nil {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonNoData}
	}
	// Negative earnings make the multiple meaningless; it cannot be
	// classified good or bad.
	if *pe < 0 {
		return core.Signal{Status: core.StatusNormal, Reason: ReasonNegativePE}
	}
	return core.Signal{Status: e.thresholds.PE.Classify(*pe)}
}

// ClassifyRelativeStrength maps a relative-strength reading (percentage
// points vs. the benchmark) to a heat level: above +5 hot, below -5 cold.
func ClassifyRelativeStrength(rs float64) core.Heat {
	switch {
	case rs > 5:
		return core.HeatHot
	case rs < -5:
		return core.HeatCold
	default:
		return core.HeatNeutral
	}
}
