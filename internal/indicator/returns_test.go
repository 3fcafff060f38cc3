package indicator

import (
	"testing"

	"github.com/stocklight/stocklight/internal/core"
)

func TestReturn(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 110}
	// 5 trading days ago close was 101.
	got := Return(closes, 5)
	want := (110.0 - 101.0) / 101.0 * 100
	if !almost(got, want) {
		t.Errorf("Return = %v, want %v", got, want)
	}
}

func TestReturn_InsufficientHistory(t *testing.T) {
	closes := []float64{100, 110}
	if got := Return(closes, 22); got != 0 {
		t.Errorf("short history must return 0, got %v", got)
	}
}

func TestReturn_ZeroBase(t *testing.T) {
	closes := []float64{0, 1, 2, 3, 4, 5, 6}
	if got := Return(closes, 6); got != 0 {
		t.Errorf("zero reference close must return 0, got %v", got)
	}
}

func TestHorizonReturns(t *testing.T) {
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.1
	}
	rets := HorizonReturns(closes)

	for _, h := range []string{core.Horizon1W, core.Horizon1M, core.Horizon3M, core.Horizon6M, core.Horizon1Y} {
		if _, ok := rets[h]; !ok {
			t.Errorf("missing horizon %s", h)
		}
	}
	if rets[core.Horizon1W] >= rets[core.Horizon1Y] {
		t.Error("steady uptrend: longer horizon should show larger return")
	}
}

func TestHorizonReturns_ShortHistoryZeroes(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rets := HorizonReturns(closes)
	if rets[core.Horizon1Y] != 0 || rets[core.Horizon6M] != 0 {
		t.Error("horizons beyond history must read 0")
	}
	if rets[core.Horizon1W] == 0 {
		t.Error("1w horizon is covered and should be nonzero")
	}
}

func TestRelativeStrength(t *testing.T) {
	inst := map[string]float64{core.Horizon1M: 8, core.Horizon3M: -2}
	bench := map[string]float64{core.Horizon1M: 3, core.Horizon3M: 4}
	rs := RelativeStrength(inst, bench)
	if rs[core.Horizon1M] != 5 || rs[core.Horizon3M] != -6 {
		t.Errorf("unexpected relative strength: %v", rs)
	}
}

func TestPctFromHigh(t *testing.T) {
	closes := []float64{100, 120, 90}
	if got := PctFromHigh(closes); !almost(got, -25) {
		t.Errorf("PctFromHigh = %v, want -25", got)
	}
	if got := PctFromHigh([]float64{50, 60}); got != 0 {
		t.Errorf("at the high should read 0, got %v", got)
	}
}

func almost(got, want float64) bool {
	d := got - want
	return d < 1e-9 && d > -1e-9
}
