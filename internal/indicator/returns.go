package indicator

import "github.com/stocklight/stocklight/internal/core"

// Trading-day offsets for the multi-horizon return windows.
var horizonOffsets = map[string]int{
	core.Horizon1W: 5,
	core.Horizon1M: 22,
	core.Horizon3M: 63,
	core.Horizon6M: 126,
	core.Horizon1Y: 252,
}

// Return computes the percentage return over the last n trading days from
// closing prices (oldest first). Returns 0 when history is too short or
// the reference close is zero; insufficient history never errors.
func Return(closes []float64, n int) float64 {
	if n <= 0 || len(closes) < n+1 {
		return 0
	}
	current := closes[len(closes)-1]
	past := closes[len(closes)-1-n]
	if past == 0 {
		return 0
	}
	return (current - past) / past * 100
}

// HorizonReturns computes the {1w, 1m, 3m, 6m, 1y} percentage returns.
func HorizonReturns(closes []float64) map[string]float64 {
	out := make(map[string]float64, len(horizonOffsets))
	for horizon, n := range horizonOffsets {
		out[horizon] = Return(closes, n)
	}
	return out
}

// RelativeStrength subtracts benchmark returns from instrument returns
// horizon by horizon, in percentage points.
func RelativeStrength(instrument, benchmark map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(instrument))
	for horizon, r := range instrument {
		out[horizon] = r - benchmark[horizon]
	}
	return out
}

// PctFromHigh returns the percentage distance of the latest close from the
// highest close in the window (zero or negative; 0 means at the high).
func PctFromHigh(closes []float64) float64 {
	if len(closes) == 0 {
		return 0
	}
	high := closes[0]
	for _, c := range closes {
		if c > high {
			high = c
		}
	}
	if high == 0 {
		return 0
	}
	return (closes[len(closes)-1] - high) / high * 100
}
