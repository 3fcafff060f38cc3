// internal/core/types.go
package core

import "time"

// Status is the three-level traffic-light classification for a metric.
type Status string

const (
	StatusGood   Status = "good"
	StatusNormal Status = "normal"
	StatusBad    Status = "bad"
)

// Dimension identifies a signal dimension on the stock detail view.
type Dimension string

const (
	DimensionEarning   Dimension = "earning"
	DimensionDebt      Dimension = "debt"
	DimensionGrowth    Dimension = "growth"
	DimensionValuation Dimension = "valuation"
)

// GrowthBasis records which fallback tier produced the growth figure,
// so formatting can caveat numbers derived from shorter windows.
type GrowthBasis string

const (
	GrowthAnnual     GrowthBasis = "annual"
	GrowthQuarterYoY GrowthBasis = "quarter_yoy"
	GrowthQuarterQoQ GrowthBasis = "quarter_qoq"
	GrowthNone       GrowthBasis = "none"
)

// QuarterFigures is one quarter of income-statement history.
type QuarterFigures struct {
	Period          string   `json:"period"` // e.g. "2025Q2"
	Revenue         *float64 `json:"revenue,omitempty"`
	NetIncome       *float64 `json:"net_income,omitempty"`
	OperatingIncome *float64 `json:"operating_income,omitempty"`
}

// FinancialSnapshot is the canonical per-ticker metric set produced by the
// normalizer. All ratios are unitless decimal fractions (0.15 == 15%).
// Nil means unknown, which is distinct from zero. Constructed fresh per
// request and never persisted.
type FinancialSnapshot struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"change_pct"`

	// Profitability
	ROE             *float64 `json:"roe,omitempty"`
	OperatingMargin *float64 `json:"operating_margin,omitempty"`
	NetMargin       *float64 `json:"net_margin,omitempty"`

	// Leverage
	DebtToEquity *float64 `json:"debt_to_equity,omitempty"`
	CurrentRatio *float64 `json:"current_ratio,omitempty"`

	// Growth
	RevenueGrowth     *float64    `json:"revenue_growth,omitempty"`
	EarningsGrowth    *float64    `json:"earnings_growth,omitempty"`
	GrowthBasis       GrowthBasis `json:"growth_basis"`
	CurrentRevenue    *float64    `json:"current_revenue,omitempty"`
	PreviousRevenue   *float64    `json:"previous_revenue,omitempty"`
	CurrentNetIncome  *float64    `json:"current_net_income,omitempty"`
	PreviousNetIncome *float64    `json:"previous_net_income,omitempty"`
	PeriodLabel       string      `json:"period_label,omitempty"`

	// Valuation
	TrailingPE *float64 `json:"trailing_pe,omitempty"`
	ForwardPE  *float64 `json:"forward_pe,omitempty"`
	PEG        *float64 `json:"peg,omitempty"`
	PB         *float64 `json:"pb,omitempty"`

	// Cash flow
	OperatingCashFlow *float64 `json:"operating_cash_flow,omitempty"`
	FreeCashFlow      *float64 `json:"free_cash_flow,omitempty"`
	PreviousOCF       *float64 `json:"previous_ocf,omitempty"`

	// Up to the 4 most recent quarters, newest first.
	Quarters []QuarterFigures `json:"quarters,omitempty"`

	// Edge-case classifications applied by the normalizer.
	PreRevenue bool `json:"pre_revenue"`
	Turnaround bool `json:"turnaround"`
}

// Signal is the classification outcome for one dimension.
type Signal struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"` // e.g. "pre-revenue", "turnaround-in-progress"
}

// SignalResult holds the per-dimension classifications for a ticker.
// Derived deterministically from a FinancialSnapshot, never mutated.
type SignalResult struct {
	Earning   Signal `json:"earning"`
	Debt      Signal `json:"debt"`
	Growth    Signal `json:"growth"`
	Valuation Signal `json:"valuation"`
}

// MetricCard is one presentation unit for the stock detail view.
type MetricCard struct {
	Dimension      Dimension `json:"dimension"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Value          string    `json:"value"`
	Status         Status    `json:"status"`
	Benchmark      string    `json:"benchmark"`
	Interpretation string    `json:"interpretation"`
	Note           string    `json:"note,omitempty"`
}

// IndexQuote is a point-in-time level with its daily move.
type IndexQuote struct {
	Level     float64 `json:"level"`
	ChangePct float64 `json:"change_pct"`
}

// Trend is a coarse direction label for a macro series.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendFlat    Trend = "flat"
	TrendStrong  Trend = "strong"
	TrendWeak    Trend = "weak"
)

// VIXBand buckets the volatility index level.
type VIXBand string

const (
	VIXVeryCalm VIXBand = "very_calm"
	VIXCalm     VIXBand = "calm"
	VIXElevated VIXBand = "elevated"
	VIXUneasy   VIXBand = "uneasy"
	VIXExtreme  VIXBand = "extreme"
)

// CycleStage is the single-pass economic cycle heuristic.
type CycleStage string

const (
	CycleRecession CycleStage = "recession"
	CycleExpansion CycleStage = "expansion"
	CycleLate      CycleStage = "late_cycle"
	CycleRecovery  CycleStage = "recovery"
)

// MarketFlags are boolean regime tests derived from a MarketState snapshot.
// Every flag is a pure function of the snapshot.
type MarketFlags struct {
	USDown           bool `json:"us_down"`
	USUp             bool `json:"us_up"`
	KRDown           bool `json:"kr_down"`
	HighVIX          bool `json:"high_vix"`
	VeryHighVIX      bool `json:"very_high_vix"`
	DollarStrong     bool `json:"dollar_strong"`
	GoldUp           bool `json:"gold_up"`
	OilUp            bool `json:"oil_up"`
	OilDown          bool `json:"oil_down"`
	KRWWeak          bool `json:"krw_weak"`
	SemiWeak         bool `json:"semi_weak"`
	DefenseStrong    bool `json:"defense_strong"`
	BTCUp            bool `json:"btc_up"`
	BTCDown          bool `json:"btc_down"`
	CryptoCorrelated bool `json:"crypto_correlated"`
}

// MarketState is the cross-asset snapshot plus everything derived from it.
type MarketState struct {
	SP500  IndexQuote `json:"sp500"`
	Nasdaq IndexQuote `json:"nasdaq"`
	Dow    IndexQuote `json:"dow"`
	KOSPI  IndexQuote `json:"kospi"`
	KOSDAQ IndexQuote `json:"kosdaq"`

	VIX float64 `json:"vix"`

	Treasury10Y         float64 `json:"treasury_10y"`           // percent
	Treasury10YChange1M float64 `json:"treasury_10y_change_1m"` // percentage points

	DollarIndex       float64 `json:"dollar_index"`
	DollarChangePct1M float64 `json:"dollar_change_pct_1m"`

	Gold IndexQuote `json:"gold"`
	Oil  IndexQuote `json:"oil"`

	USDKRW IndexQuote `json:"usdkrw"`

	BTC IndexQuote `json:"btc"`
	ETH IndexQuote `json:"eth"`
	SOL IndexQuote `json:"sol"`

	// Individual equity/ETF quotes keyed by symbol (semis, defense, ...).
	Quotes map[string]IndexQuote `json:"quotes,omitempty"`

	// 3-month benchmark return used by the cycle heuristic, in percent.
	MarketReturn3M float64 `json:"market_return_3m"`

	Flags       MarketFlags `json:"flags"`
	VIXBand     VIXBand     `json:"vix_band"`
	RateTrend   Trend       `json:"rate_trend"`
	DollarTrend Trend       `json:"dollar_trend"`
	CycleStage  CycleStage  `json:"cycle_stage"`

	AsOf time.Time `json:"as_of"`
}

// Speaker identifies a debate persona.
type Speaker string

const (
	SpeakerBull      Speaker = "bull"
	SpeakerBear      Speaker = "bear"
	SpeakerModerator Speaker = "moderator"
)

// DebateMessage is one turn of the scripted debate. Emission order is the
// narrative order and must be preserved end-to-end.
type DebateMessage struct {
	ID          string  `json:"id"`
	Speaker     Speaker `json:"speaker"`
	DisplayName string  `json:"display_name"`
	Text        string  `json:"text"`
	Topic       string  `json:"topic"`
}

// VerdictTone is the executive verdict severity.
type VerdictTone string

const (
	ToneDanger   VerdictTone = "danger"
	ToneCaution  VerdictTone = "caution"
	TonePositive VerdictTone = "positive"
	ToneNeutral  VerdictTone = "neutral"
)

// Verdict is the single-card executive summary shown above the debate.
type Verdict struct {
	Headline string      `json:"headline"`
	Detail   string      `json:"detail"`
	Tone     VerdictTone `json:"tone"`
}

// Heat classifies sector or value-chain performance vs. the benchmark.
type Heat string

const (
	HeatHot     Heat = "hot"
	HeatNeutral Heat = "neutral"
	HeatCold    Heat = "cold"
)

// Horizon labels for multi-horizon returns.
const (
	Horizon1W = "1w"
	Horizon1M = "1m"
	Horizon3M = "3m"
	Horizon6M = "6m"
	Horizon1Y = "1y"
)

// SectorRecord is a per-sector performance bundle.
type SectorRecord struct {
	Sector           string             `json:"sector"`
	Symbol           string             `json:"symbol"`
	Returns          map[string]float64 `json:"returns"`           // horizon -> %
	RelativeStrength map[string]float64 `json:"relative_strength"` // horizon -> pp vs benchmark
	Heat             Heat               `json:"heat"`
}

// ProofStatus grades a value-chain stage's price action.
type ProofStatus string

const (
	ProofProven    ProofStatus = "proven"
	ProofImproving ProofStatus = "improving"
	ProofUnproven  ProofStatus = "unproven"
)

// ValueChainStage is a supply-chain stage performance bundle.
type ValueChainStage struct {
	Stage            string             `json:"stage"`
	Symbol           string             `json:"symbol"`
	Returns          map[string]float64 `json:"returns"`
	RelativeStrength map[string]float64 `json:"relative_strength"`
	Heat             Heat               `json:"heat"`
	Return3M         float64            `json:"return_3m"`
	RSI14            float64            `json:"rsi_14"`
	PctFrom52WHigh   float64            `json:"pct_from_52w_high"` // negative below the high
	ProofStatus      ProofStatus        `json:"proof_status"`
}

// Float returns a pointer to v. Convenience for optional fields.
func Float(v float64) *float64 { return &v }
