// internal/marketstate/classifier.go
package marketstate

import "github.com/stocklight/stocklight/internal/core"

// Classifier derives regime flags, bands and the cycle stage from a raw
// market snapshot. It is pure: the same snapshot always classifies the
// same way, and it never fetches anything itself.
type Classifier struct {
	t Thresholds
}

// New creates a classifier with the given cutoffs.
func New(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify fills every derived field of the snapshot and returns it.
// Raw fields left at their defaults (a failed upstream fetch) simply
// classify as calm/flat; partial data never aborts the computation.
func (c *Classifier) Classify(ms core.MarketState) core.MarketState {
	ms.VIXBand = VIXBandFor(ms.VIX)
	ms.RateTrend = c.rateTrend(ms.Treasury10YChange1M)
	ms.DollarTrend = c.dollarTrend(ms.DollarChangePct1M)
	ms.CycleStage = c.cycleStage(ms.VIX, ms.MarketReturn3M, ms.Treasury10YChange1M)
	ms.Flags = c.flags(ms)
	return ms
}

// VIXBandFor buckets the volatility index level.
func VIXBandFor(vix float64) core.VIXBand {
	switch {
	case vix < 15:
		return core.VIXVeryCalm
	case vix < 20:
		return core.VIXCalm
	case vix < 25:
		return core.VIXElevated
	case vix < 30:
		return core.VIXUneasy
	default:
		return core.VIXExtreme
	}
}

// rateTrend classifies the 1-month 10Y yield change, in percentage points.
func (c *Classifier) rateTrend(delta float64) core.Trend {
	switch {
	case delta < -c.t.RateTrendDelta:
		return core.TrendFalling
	case delta > c.t.RateTrendDelta:
		return core.TrendRising
	default:
		return core.TrendFlat
	}
}

// dollarTrend classifies the 1-month dollar index move.
func (c *Classifier) dollarTrend(pct float64) core.Trend {
	switch {
	case pct < -c.t.DollarTrendPct:
		return core.TrendWeak
	case pct > c.t.DollarTrendPct:
		return core.TrendStrong
	default:
		return core.TrendFlat
	}
}

// cycleStage applies the ordered single-pass heuristic; first match wins.
func (c *Classifier) cycleStage(vix, return3M, rateDelta1M float64) core.CycleStage {
	switch {
	case vix > c.t.RecessionVIX && return3M < c.t.Recession3MPct:
		return core.CycleRecession
	case return3M > c.t.Expansion3MPct && vix < c.t.ExpansionVIX:
		return core.CycleExpansion
	case rateDelta1M > c.t.LateCycleRateDelta && return3M > 0:
		return core.CycleLate
	default:
		return core.CycleRecovery
	}
}

func (c *Classifier) flags(ms core.MarketState) core.MarketFlags {
	t := c.t
	semi := ms.Quotes[SymbolSemis]
	defense := ms.Quotes[SymbolDefense]

	sameDirection := (ms.BTC.ChangePct > t.CryptoCorrPct && ms.Nasdaq.ChangePct > t.CryptoCorrPct) ||
		(ms.BTC.ChangePct < -t.CryptoCorrPct && ms.Nasdaq.ChangePct < -t.CryptoCorrPct)

	return core.MarketFlags{
		USDown:           ms.SP500.ChangePct < -t.USDownPct,
		USUp:             ms.SP500.ChangePct > t.USUpPct,
		KRDown:           ms.KOSPI.ChangePct < -t.KRDownPct,
		HighVIX:          ms.VIX > t.HighVIX,
		VeryHighVIX:      ms.VIX > t.VeryHighVIX,
		DollarStrong:     ms.DollarChangePct1M > t.DollarTrendPct,
		GoldUp:           ms.Gold.ChangePct > t.GoldUpPct,
		OilUp:            ms.Oil.ChangePct > t.OilMovePct,
		OilDown:          ms.Oil.ChangePct < -t.OilMovePct,
		KRWWeak:          ms.USDKRW.Level > t.KRWWeakLevel,
		SemiWeak:         semi.ChangePct < -t.SemiWeakPct,
		DefenseStrong:    defense.ChangePct > t.DefensePct,
		BTCUp:            ms.BTC.ChangePct > t.BTCMovePct,
		BTCDown:          ms.BTC.ChangePct < -t.BTCMovePct,
		CryptoCorrelated: sameDirection,
	}
}

// DefaultSnapshot returns the documented fallback values substituted when
// an upstream series cannot be fetched: calm volatility, flat rates and
// currencies, unchanged quotes. Classification over these defaults yields
// a neutral regime rather than an error.
func DefaultSnapshot() core.MarketState {
	return core.MarketState{
		VIX:         20,
		Treasury10Y: 4.0,
		DollarIndex: 100,
		USDKRW:      core.IndexQuote{Level: 1350},
		Quotes:      map[string]core.IndexQuote{},
	}
}
