// internal/marketstate/thresholds.go
package marketstate

// Thresholds hold every cutoff used to derive regime flags from a market
// snapshot. They are heuristics, not backtested truths, so they live in
// configuration with these defaults.
type Thresholds struct {
	USDownPct     float64 `mapstructure:"us_down_pct"`     // S&P daily % below -X -> usDown
	USUpPct       float64 `mapstructure:"us_up_pct"`       // S&P daily % above +X -> usUp
	KRDownPct     float64 `mapstructure:"kr_down_pct"`     // KOSPI daily % below -X -> krDown
	HighVIX       float64 `mapstructure:"high_vix"`        // VIX above -> highVix
	VeryHighVIX   float64 `mapstructure:"very_high_vix"`   // VIX above -> veryHighVix
	GoldUpPct     float64 `mapstructure:"gold_up_pct"`     // gold daily % above -> goldUp
	OilMovePct    float64 `mapstructure:"oil_move_pct"`    // oil daily % beyond +/- -> oilUp/oilDown
	KRWWeakLevel  float64 `mapstructure:"krw_weak_level"`  // USD/KRW above -> krwWeak
	SemiWeakPct   float64 `mapstructure:"semi_weak_pct"`   // semis daily % below -X -> semiWeak
	DefensePct    float64 `mapstructure:"defense_pct"`     // defense daily % above -> defenseStrong
	BTCMovePct    float64 `mapstructure:"btc_move_pct"`    // BTC daily % beyond +/- -> btcUp/btcDown
	CryptoCorrPct float64 `mapstructure:"crypto_corr_pct"` // BTC and Nasdaq both beyond +/- -> cryptoCorrelated

	RateTrendDelta float64 `mapstructure:"rate_trend_delta"` // 1M yield change in pp for rising/falling
	DollarTrendPct float64 `mapstructure:"dollar_trend_pct"` // 1M % change for strong/weak

	RecessionVIX       float64 `mapstructure:"recession_vix"`
	Recession3MPct     float64 `mapstructure:"recession_3m_pct"`
	Expansion3MPct     float64 `mapstructure:"expansion_3m_pct"`
	ExpansionVIX       float64 `mapstructure:"expansion_vix"`
	LateCycleRateDelta float64 `mapstructure:"late_cycle_rate_delta"`
}

// DefaultThresholds returns the shipped cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		USDownPct:     0.5,
		USUpPct:       0.5,
		KRDownPct:     0.5,
		HighVIX:       25,
		VeryHighVIX:   30,
		GoldUpPct:     1.0,
		OilMovePct:    2.0,
		KRWWeakLevel:  1400,
		SemiWeakPct:   1.5,
		DefensePct:    1.0,
		BTCMovePct:    2.0,
		CryptoCorrPct: 1.0,

		RateTrendDelta: 0.1,
		DollarTrendPct: 2.0,

		RecessionVIX:       25,
		Recession3MPct:     -5,
		Expansion3MPct:     10,
		ExpansionVIX:       20,
		LateCycleRateDelta: 0.3,
	}
}

// Quote symbols whose daily moves feed individual flags.
const (
	SymbolSemis   = "SMH" // semiconductor ETF
	SymbolDefense = "ITA" // aerospace & defense ETF
)
