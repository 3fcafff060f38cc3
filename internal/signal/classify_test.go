package signal

import (
	"testing"

	"github.com/stocklight/stocklight/internal/core"
)

func TestClassify_HigherIsBetter(t *testing.T) {
	tests := []struct {
		value float64
		want  core.Status
	}{
		{0.20, core.StatusGood},
		{0.15, core.StatusGood},
		{0.10, core.StatusNormal},
		{0.05, core.StatusBad},
		{0.01, core.StatusBad},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, 0.15, 0.05, true); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassify_LowerIsBetter(t *testing.T) {
	tests := []struct {
		value float64
		want  core.Status
	}{
		{0.3, core.StatusGood},
		{0.5, core.StatusGood},
		{0.712, core.StatusNormal},
		{1.5, core.StatusBad},
		{2.0, core.StatusBad},
	}
	for _, tt := range tests {
		if got := Classify(tt.value, 0.5, 1.5, false); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

// Moving a value further in the better direction must never downgrade the
// status.
func TestClassify_Monotonic(t *testing.T) {
	rank := map[core.Status]int{core.StatusBad: 0, core.StatusNormal: 1, core.StatusGood: 2}

	prev := -1
	for v := -1.0; v <= 2.0; v += 0.01 {
		got := rank[Classify(v, 0.15, 0.05, true)]
		if got < prev {
			t.Fatalf("status downgraded at value %v", v)
		}
		prev = got
	}

	prev = -1
	for v := 5.0; v >= -1.0; v -= 0.01 {
		got := rank[Classify(v, 0.5, 1.5, false)]
		if got < prev {
			t.Fatalf("status downgraded at value %v (lower-is-better)", v)
		}
		prev = got
	}
}

// Every band edge is inclusive on the good side, revenue growth included.
// A value sitting exactly on the good edge classifies good.
func TestCompute_GrowthExactlyAtGoodEdge(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{
		RevenueGrowth: core.Float(0.15),
		GrowthBasis:   core.GrowthAnnual,
	}
	got := e.Compute(s)
	if got.Growth.Status != core.StatusGood {
		t.Errorf("growth at the good edge = %s, want good", got.Growth.Status)
	}
}

func TestCompute_EarningGood(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{
		ROE:               core.Float(0.18),
		OperatingCashFlow: core.Float(2_000_000),
	}
	got := e.Compute(s)
	if got.Earning.Status != core.StatusGood {
		t.Errorf("expected good earning, got %s (%s)", got.Earning.Status, got.Earning.Reason)
	}
}

func TestCompute_NegativeOCFBeatsROE(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{
		ROE:               core.Float(0.18),
		OperatingCashFlow: core.Float(-500_000),
	}
	got := e.Compute(s)
	if got.Earning.Status != core.StatusBad {
		t.Errorf("negative OCF must override ROE, got %s", got.Earning.Status)
	}
	if got.Earning.Reason != ReasonNegativeOCF {
		t.Errorf("unexpected reason %q", got.Earning.Reason)
	}
}

func TestCompute_PreRevenueOverridesEverything(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{
		PreRevenue: true,
		ROE:        core.Float(-0.90),
		TrailingPE: core.Float(500),
	}
	got := e.Compute(s)
	if got.Earning.Status != core.StatusNormal || got.Earning.Reason != ReasonPreRevenue {
		t.Errorf("earning = %+v", got.Earning)
	}
	if got.Growth.Status != core.StatusNormal || got.Growth.Reason != ReasonPreRevenue {
		t.Errorf("growth = %+v", got.Growth)
	}
}

func TestCompute_Turnaround(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{
		Turnaround:        true,
		ROE:               core.Float(-0.20),
		RevenueGrowth:     core.Float(-0.30),
		OperatingCashFlow: core.Float(1_000),
	}
	got := e.Compute(s)
	if got.Earning.Status != core.StatusNormal || got.Earning.Reason != ReasonTurnaround {
		t.Errorf("earning = %+v", got.Earning)
	}
	if got.Growth.Status != core.StatusNormal || got.Growth.Reason != ReasonTurnaround {
		t.Errorf("growth = %+v", got.Growth)
	}
}

func TestCompute_NegativePEIsNormal(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{TrailingPE: core.Float(-12.5)}
	got := e.Compute(s)
	if got.Valuation.Status != core.StatusNormal || got.Valuation.Reason != ReasonNegativePE {
		t.Errorf("valuation = %+v", got.Valuation)
	}
}

func TestCompute_ForwardPEFallback(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{ForwardPE: core.Float(25)}
	got := e.Compute(s)
	if got.Valuation.Status != core.StatusGood {
		t.Errorf("forward PE 25 should classify good, got %s", got.Valuation.Status)
	}
}

func TestCompute_DebtNormalBand(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	s := &core.FinancialSnapshot{DebtToEquity: core.Float(0.712)}
	got := e.Compute(s)
	if got.Debt.Status != core.StatusNormal {
		t.Errorf("D/E 0.712 should be normal, got %s", got.Debt.Status)
	}
}

func TestCompute_MissingFieldsDegrade(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	got := e.Compute(&core.FinancialSnapshot{})
	for _, sig := range []core.Signal{got.Earning, got.Debt, got.Growth, got.Valuation} {
		if sig.Status != core.StatusNormal || sig.Reason != ReasonNoData {
			t.Errorf("missing data should degrade to normal/data-unavailable, got %+v", sig)
		}
	}
}

func TestClassifyRelativeStrength(t *testing.T) {
	tests := []struct {
		rs   float64
		want core.Heat
	}{
		{8, core.HeatHot},
		{5, core.HeatNeutral},
		{0, core.HeatNeutral},
		{-5, core.HeatNeutral},
		{-6, core.HeatCold},
	}
	for _, tt := range tests {
		if got := ClassifyRelativeStrength(tt.rs); got != tt.want {
			t.Errorf("ClassifyRelativeStrength(%v) = %s, want %s", tt.rs, got, tt.want)
		}
	}
}
