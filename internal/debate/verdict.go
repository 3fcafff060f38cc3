// internal/debate/verdict.go
package debate

import (
	"fmt"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/format"
)

// Verdict decision-tree cutoffs. Unlike the regime flag thresholds these
// are part of the verdict contract and stay fixed.
const (
	panicVIX       = 30.0
	panicSPPct     = -2.0
	panicNasdaqPct = -3.0
	rallyPct       = 0.5
)

// BuildVerdict derives the executive card from the market snapshot.
// Branch priority: panic, then joint US/Korea decline, then US-only
// decline, then joint US rally, else neutral. The panic branch fires on
// any one of its triggers regardless of the others.
func BuildVerdict(ms core.MarketState) core.Verdict {
	f := format.New()
	sp := f.ChangePct(ms.SP500.ChangePct)
	nq := f.ChangePct(ms.Nasdaq.ChangePct)
	kr := f.ChangePct(ms.KOSPI.ChangePct)

	switch {
	case ms.VIX > panicVIX || ms.SP500.ChangePct < panicSPPct || ms.Nasdaq.ChangePct < panicNasdaqPct:
		return core.Verdict{
			Headline: "Risk-off: markets are in panic mode",
			Detail: fmt.Sprintf("VIX at %.1f with S&P 500 %s and Nasdaq %s. Capital preservation comes first today.",
				ms.VIX, sp, nq),
			Tone: core.ToneDanger,
		}
	case ms.Flags.USDown && ms.Flags.KRDown:
		return core.Verdict{
			Headline: "US and Korea declining together",
			Detail: fmt.Sprintf("S&P 500 %s and KOSPI %s. A synchronized pullback argues for smaller position sizes.",
				sp, kr),
			Tone: core.ToneCaution,
		}
	case ms.Flags.USDown:
		return core.Verdict{
			Headline: "US markets under pressure",
			Detail: fmt.Sprintf("S&P 500 %s while KOSPI held up at %s. Watch whether the weakness spreads.",
				sp, kr),
			Tone: core.ToneCaution,
		}
	case ms.SP500.ChangePct > rallyPct && ms.Nasdaq.ChangePct > rallyPct:
		return core.Verdict{
			Headline: "Broad US rally",
			Detail: fmt.Sprintf("S&P 500 %s and Nasdaq %s rallying together. Breadth like this usually has follow-through.",
				sp, nq),
			Tone: core.TonePositive,
		}
	default:
		return core.Verdict{
			Headline: "Mixed session, no clear direction",
			Detail: fmt.Sprintf("S&P 500 %s, Nasdaq %s, VIX %.1f. No single theme dominates; stay selective.",
				sp, nq, ms.VIX),
			Tone: core.ToneNeutral,
		}
	}
}
