// internal/sector/sector.go
package sector

import (
	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/indicator"
	"github.com/stocklight/stocklight/internal/signal"
)

// Thresholds control the value-chain proof grading. Configurable like the
// rest of the heuristic cutoffs.
type Thresholds struct {
	Proven3MPct       float64 `mapstructure:"proven_3m_pct"`        // 3M return needed for "proven"
	ProvenRSIFloor    float64 `mapstructure:"proven_rsi_floor"`     // RSI-14 floor for "proven"
	ProvenFromHighPct float64 `mapstructure:"proven_from_high_pct"` // max % below the 52-week high
}

// DefaultThresholds returns the shipped grading cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Proven3MPct:       10,
		ProvenRSIFloor:    55,
		ProvenFromHighPct: 15,
	}
}

// Analyzer classifies sector and value-chain performance from daily
// closing series (oldest first) against a benchmark index.
type Analyzer struct {
	t Thresholds
}

// New creates an analyzer.
func New(t Thresholds) *Analyzer {
	return &Analyzer{t: t}
}

// Sector builds the performance bundle for one sector proxy. Heat is read
// off the 1-month relative strength.
func (a *Analyzer) Sector(name, symbol string, closes, benchmark []float64) core.SectorRecord {
	returns := indicator.HorizonReturns(closes)
	rs := indicator.RelativeStrength(returns, indicator.HorizonReturns(benchmark))

	return core.SectorRecord{
		Sector:           name,
		Symbol:           symbol,
		Returns:          returns,
		RelativeStrength: rs,
		Heat:             signal.ClassifyRelativeStrength(rs[core.Horizon1M]),
	}
}

// Stage builds the bundle for one value-chain stage, adding the proof
// grade derived from 3-month return, RSI-14 and 52-week-high distance.
func (a *Analyzer) Stage(stage, symbol string, closes, benchmark []float64) core.ValueChainStage {
	rec := a.Sector(stage, symbol, closes, benchmark)

	ret3M := rec.Returns[core.Horizon3M]
	rsi := indicator.RSI14(closes)
	fromHigh := indicator.PctFromHigh(tail(closes, 252))

	return core.ValueChainStage{
		Stage:            stage,
		Symbol:           symbol,
		Returns:          rec.Returns,
		RelativeStrength: rec.RelativeStrength,
		Heat:             rec.Heat,
		Return3M:         ret3M,
		RSI14:            rsi,
		PctFrom52WHigh:   fromHigh,
		ProofStatus:      a.proof(ret3M, rsi, fromHigh),
	}
}

// proof grades the stage: proven needs all three conditions, improving
// needs only a positive 3-month return.
func (a *Analyzer) proof(ret3M, rsi, fromHigh float64) core.ProofStatus {
	if ret3M > a.t.Proven3MPct && rsi > a.t.ProvenRSIFloor && fromHigh > -a.t.ProvenFromHighPct {
		return core.ProofProven
	}
	if ret3M > 0 {
		return core.ProofImproving
	}
	return core.ProofUnproven
}

func tail(s []float64, n int) []float64 {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
