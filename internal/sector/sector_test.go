package sector

import (
	"testing"

	"github.com/stocklight/stocklight/internal/core"
)

// series builds a daily close series of n points with a constant per-day
// percentage drift, oldest first.
func series(n int, start, dailyPct float64) []float64 {
	s := make([]float64, n)
	v := start
	for i := range s {
		s[i] = v
		v *= 1 + dailyPct/100
	}
	return s
}

func TestSector_HeatFromOneMonthRelativeStrength(t *testing.T) {
	a := New(DefaultThresholds())

	// Sector rallies ~0.5%/day while the benchmark is flat: over 22 trading
	// days that is well past the +5pp hot cutoff.
	hot := a.Sector("semiconductor", "SMH", series(300, 100, 0.5), series(300, 100, 0))
	if hot.Heat != core.HeatHot {
		t.Errorf("outperformer heat = %s, want hot", hot.Heat)
	}

	cold := a.Sector("retail", "XRT", series(300, 100, -0.5), series(300, 100, 0))
	if cold.Heat != core.HeatCold {
		t.Errorf("laggard heat = %s, want cold", cold.Heat)
	}

	flat := a.Sector("utilities", "XLU", series(300, 100, 0.01), series(300, 100, 0))
	if flat.Heat != core.HeatNeutral {
		t.Errorf("in-line heat = %s, want neutral", flat.Heat)
	}
}

func TestSector_CarriesAllHorizons(t *testing.T) {
	a := New(DefaultThresholds())
	rec := a.Sector("energy", "XLE", series(300, 100, 0.1), series(300, 100, 0.05))

	for _, h := range []string{core.Horizon1W, core.Horizon1M, core.Horizon3M, core.Horizon6M, core.Horizon1Y} {
		if _, ok := rec.Returns[h]; !ok {
			t.Errorf("missing return horizon %s", h)
		}
		if _, ok := rec.RelativeStrength[h]; !ok {
			t.Errorf("missing relative strength horizon %s", h)
		}
	}
}

func TestStage_Proven(t *testing.T) {
	a := New(DefaultThresholds())

	// Steady uptrend: strong 3M return, elevated RSI, sitting at the high.
	st := a.Stage("fabrication", "TSM", series(300, 100, 0.3), series(300, 100, 0.05))
	if st.ProofStatus != core.ProofProven {
		t.Errorf("uptrend stage = %s (3M %.1f%%, RSI %.1f, from high %.1f%%), want proven",
			st.ProofStatus, st.Return3M, st.RSI14, st.PctFrom52WHigh)
	}
}

func TestStage_ImprovingNeedsOnlyPositive3M(t *testing.T) {
	a := New(DefaultThresholds())

	// Mild drift: positive 3M return but nowhere near the proven bar.
	st := a.Stage("packaging", "AMKR", series(300, 100, 0.05), series(300, 100, 0.05))
	if st.Return3M <= 0 || st.Return3M > a.t.Proven3MPct {
		t.Fatalf("fixture drifted out of the improving band: 3M = %.2f%%", st.Return3M)
	}
	if st.ProofStatus != core.ProofImproving {
		t.Errorf("mild uptrend stage = %s, want improving", st.ProofStatus)
	}
}

func TestStage_Unproven(t *testing.T) {
	a := New(DefaultThresholds())

	st := a.Stage("equipment", "ASML", series(300, 200, -0.2), series(300, 100, 0))
	if st.ProofStatus != core.ProofUnproven {
		t.Errorf("downtrend stage = %s, want unproven", st.ProofStatus)
	}
	if st.PctFrom52WHigh >= 0 {
		t.Error("downtrend should sit below its 52-week high")
	}
}

func TestStage_StrongReturnButFarFromHighIsNotProven(t *testing.T) {
	a := New(DefaultThresholds())

	// Crash then sharp bounce: the 3M return clears the bar but the series
	// is still far below its 52-week high.
	closes := append(series(200, 300, 0), series(100, 100, 0.4)...)
	st := a.Stage("materials", "LIN", closes, series(300, 100, 0))
	if st.Return3M <= a.t.Proven3MPct {
		t.Fatalf("fixture bounce too weak: 3M = %.2f%%", st.Return3M)
	}
	if st.ProofStatus == core.ProofProven {
		t.Errorf("stage %.0f%% below its high must not grade proven (from high %.1f%%)",
			a.t.ProvenFromHighPct, st.PctFrom52WHigh)
	}
}
