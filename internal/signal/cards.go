// internal/signal/cards.go
package signal

import (
	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/format"
)

// Cards builds the per-metric presentation units for a snapshot. The
// interpretation text re-applies the same bands used by Compute, so the
// card label always agrees with the traffic light.
func (e *Engine) Cards(s *core.FinancialSnapshot, f *format.Formatter) []core.MetricCard {
	if s == nil {
		return nil
	}
	t := e.thresholds

	cards := []core.MetricCard{
		e.card(core.DimensionEarning, "ROE", "Return on equity: net income over shareholder equity.",
			s.ROE, t.ROE, f.Percent(s.ROE), "15% or higher", f,
			map[core.Status]string{core.StatusGood: "excellent", core.StatusNormal: "adequate", core.StatusBad: "low"}),
		e.card(core.DimensionEarning, "Operating margin", "Operating income as a share of revenue.",
			s.OperatingMargin, t.OperatingMargin, f.Percent(s.OperatingMargin), "10% or higher", f,
			map[core.Status]string{core.StatusGood: "strong", core.StatusNormal: "moderate", core.StatusBad: "thin"}),
		e.card(core.DimensionEarning, "Net margin", "Net income as a share of revenue.",
			s.NetMargin, t.NetMargin, f.Percent(s.NetMargin), "10% or higher", f,
			map[core.Status]string{core.StatusGood: "strong", core.StatusNormal: "moderate", core.StatusBad: "thin"}),
		e.card(core.DimensionDebt, "Debt to equity", "Total debt relative to shareholder equity.",
			s.DebtToEquity, t.DebtToEquity, f.Ratio(s.DebtToEquity), "0.5x or lower", f,
			map[core.Status]string{core.StatusGood: "conservative", core.StatusNormal: "manageable", core.StatusBad: "heavy"}),
		e.card(core.DimensionDebt, "Current ratio", "Current assets over current liabilities.",
			s.CurrentRatio, t.CurrentRatio, f.Ratio(s.CurrentRatio), "1.5x or higher", f,
			map[core.Status]string{core.StatusGood: "ample", core.StatusNormal: "adequate", core.StatusBad: "tight"}),
		e.growthCard(s, f),
		e.card(core.DimensionValuation, "P/E", "Price relative to trailing earnings per share.",
			s.TrailingPE, t.PE, f.Ratio(s.TrailingPE), "under 40x", f,
			map[core.Status]string{core.StatusGood: "reasonably priced", core.StatusNormal: "fully priced", core.StatusBad: "expensive"}),
		e.card(core.DimensionValuation, "PEG", "P/E adjusted for the earnings growth rate.",
			s.PEG, t.PEG, f.Ratio(s.PEG), "under 1.0x", f,
			map[core.Status]string{core.StatusGood: "cheap for its growth", core.StatusNormal: "fairly valued", core.StatusBad: "expensive for its growth"}),
		e.card(core.DimensionValuation, "P/B", "Price relative to book value per share.",
			s.PB, t.PB, f.Ratio(s.PB), "under 3.0x", f,
			map[core.Status]string{core.StatusGood: "below typical book multiples", core.StatusNormal: "in the usual range", core.StatusBad: "rich vs. book value"}),
	}

	// Snapshot-level overrides annotate rather than re-score the cards.
	if s.PreRevenue {
		for i := range cards {
			if cards[i].Dimension == core.DimensionEarning || cards[i].Dimension == core.DimensionGrowth {
				cards[i].Status = core.StatusNormal
				cards[i].Note = "Company is pre-revenue; profitability ratios are not meaningful yet."
			}
		}
	} else if s.Turnaround {
		for i := range cards {
			if cards[i].Dimension == core.DimensionEarning || cards[i].Dimension == core.DimensionGrowth {
				cards[i].Status = core.StatusNormal
				cards[i].Note = "Annual loss with a profitable latest quarter; turnaround in progress."
			}
		}
	}

	return cards
}

func (e *Engine) card(dim core.Dimension, name, desc string, v *float64, band Band,
	value, benchmark string, f *format.Formatter, labels map[core.Status]string) core.MetricCard {

	c := core.MetricCard{
		Dimension:   dim,
		Name:        name,
		Description: desc,
		Value:       value,
		Benchmark:   benchmark,
	}
	if v == nil {
		c.Status = core.StatusNormal
		c.Interpretation = f.NA()
		return c
	}
	c.Status = band.Classify(*v)
	c.Interpretation = labels[c.Status]
	return c
}

func (e *Engine) growthCard(s *core.FinancialSnapshot, f *format.Formatter) core.MetricCard {
	c := e.card(core.DimensionGrowth, "Revenue growth", "Change in revenue versus the prior period.",
		s.RevenueGrowth, e.thresholds.RevenueGrowth, f.PercentSigned(s.RevenueGrowth), "above 15%", f,
		map[core.Status]string{core.StatusGood: "rapid", core.StatusNormal: "steady", core.StatusBad: "shrinking"})
	if s.PeriodLabel != "" {
		c.Benchmark = c.Benchmark + " (" + s.PeriodLabel + ")"
	}
	switch s.GrowthBasis {
	case core.GrowthQuarterYoY:
		c.Note = "Annual figures unavailable; growth computed from the same quarter a year ago."
	case core.GrowthQuarterQoQ:
		c.Note = "Limited history; growth computed quarter over quarter."
	}
	return c
}
