// internal/debate/rules.go
package debate

import (
	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/format"
)

// Stock is the per-ticker material available to the earnings topic.
type Stock struct {
	Ticker  string
	Name    string
	Signals core.SignalResult
}

// Context is everything a rule may look at. It is read-only during a
// generation pass, which keeps the whole script a pure function of the
// inputs.
type Context struct {
	Market  core.MarketState
	Stocks  []Stock
	Session Session
	F       *format.Formatter
}

// Rule pairs a condition with the line emitted when it holds. A nil
// condition always matches, which is how a list states its default.
type Rule struct {
	When func(*Context) bool
	Line func(*Context) string
}

// firstMatch evaluates rules in slice order and returns the first matching
// line. Slice order IS the precedence order; every list must end with a
// nil-condition default so the result is never empty.
func firstMatch(rules []Rule, ctx *Context) string {
	for _, r := range rules {
		if r.When == nil || r.When(ctx) {
			return r.Line(ctx)
		}
	}
	return ""
}

// when builds a conditional rule.
func when(cond func(*Context) bool, line func(*Context) string) Rule {
	return Rule{When: cond, Line: line}
}

// otherwise builds the list default.
func otherwise(line func(*Context) string) Rule {
	return Rule{Line: line}
}

// fixed builds a default with static text.
func fixed(text string) Rule {
	return Rule{Line: func(*Context) string { return text }}
}

// Condition helpers shared across topic scripts.

func flag(get func(core.MarketFlags) bool) func(*Context) bool {
	return func(ctx *Context) bool { return get(ctx.Market.Flags) }
}

func cycleIs(stage core.CycleStage) func(*Context) bool {
	return func(ctx *Context) bool { return ctx.Market.CycleStage == stage }
}

func vixAtLeast(band core.VIXBand) func(*Context) bool {
	order := map[core.VIXBand]int{
		core.VIXVeryCalm: 0, core.VIXCalm: 1, core.VIXElevated: 2,
		core.VIXUneasy: 3, core.VIXExtreme: 4,
	}
	return func(ctx *Context) bool { return order[ctx.Market.VIXBand] >= order[band] }
}

// goodEarnings counts covered stocks whose earning signal is good.
func (ctx *Context) goodEarnings() int {
	n := 0
	for _, s := range ctx.Stocks {
		if s.Signals.Earning.Status == core.StatusGood {
			n++
		}
	}
	return n
}

// badEarnings counts covered stocks whose earning signal is bad.
func (ctx *Context) badEarnings() int {
	n := 0
	for _, s := range ctx.Stocks {
		if s.Signals.Earning.Status == core.StatusBad {
			n++
		}
	}
	return n
}

// firstStockName names the first covered stock, for earnings color.
func (ctx *Context) firstStockName() string {
	if len(ctx.Stocks) == 0 {
		return "the companies we track"
	}
	if ctx.Stocks[0].Name != "" {
		return ctx.Stocks[0].Name
	}
	return ctx.Stocks[0].Ticker
}
