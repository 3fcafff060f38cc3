// internal/debate/scripts.go
package debate

import (
	"fmt"

	"github.com/stocklight/stocklight/internal/core"
)

// topicBank holds the six rule lists of one debated topic, in turn order.
type topicBank struct {
	intro        []Rule
	bear         []Rule
	bull         []Rule
	bearRebuttal []Rule
	bullResponse []Rule
	summary      []Rule
}

// debatedTopic pairs a topic name with its fragment bank.
type debatedTopic struct {
	name string
	bank topicBank
}

// debatedTopics returns the middle topics in narrative order. Opening and
// closing are handled separately by the generator.
func debatedTopics() []debatedTopic {
	return []debatedTopic{
		{TopicGeopolitics, geopoliticsBank()},
		{TopicEarnings, earningsBank()},
		{TopicMacro, macroBank()},
		{TopicCommodities, commoditiesBank()},
		{TopicCrypto, cryptoBank()},
		{TopicRegional, regionalBank()},
		{TopicStrategy, strategyBank()},
	}
}

func geopoliticsBank() topicBank {
	return topicBank{
		intro: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.GoldUp && f.OilUp }), func(ctx *Context) string {
				return fmt.Sprintf("Let's start with geopolitics. Gold %s and oil %s on the same day usually means the market is pricing real-world risk.",
					ctx.F.ChangePct(ctx.Market.Gold.ChangePct), ctx.F.ChangePct(ctx.Market.Oil.ChangePct))
			}),
			when(flag(func(f core.MarketFlags) bool { return f.GoldUp }), func(ctx *Context) string {
				return fmt.Sprintf("First topic, geopolitics. Gold caught a bid today, %s, so someone is hedging something.",
					ctx.F.ChangePct(ctx.Market.Gold.ChangePct))
			}),
			fixed("First up, geopolitics. The headline risk gauges are quiet, but quiet is exactly when positioning gets complacent."),
		},
		bear: []Rule{
			when(vixAtLeast(core.VIXUneasy), func(ctx *Context) string {
				return fmt.Sprintf("A VIX of %.1f tells you the options market is not treating the headlines as noise. When insurance gets this expensive, it is usually bought for a reason.", ctx.Market.VIX)
			}),
			when(flag(func(f core.MarketFlags) bool { return f.DollarStrong }), func(ctx *Context) string {
				return "The dollar grinding higher is the geopolitical tell. Capital runs to the reserve currency when it is nervous, and that flow drains emerging markets first."
			}),
			fixed("Calm tape does not mean calm world. Shipping lanes, elections and sanctions regimes are all live risks that a single headline can reprice overnight."),
		},
		bull: []Rule{
			when(flag(func(f core.MarketFlags) bool { return !f.GoldUp && !f.OilUp }), func(ctx *Context) string {
				return "Neither gold nor oil is moving, and those are the two assets that react first to genuine escalation. The market has seen this movie and is not paying for tickets."
			}),
			otherwise(func(ctx *Context) string {
				return "Geopolitical selloffs have been buying opportunities for a decade. Unless supply chains are physically disrupted, earnings power is untouched and prices recover."
			}),
		},
		bearRebuttal: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.OilUp }), func(ctx *Context) string {
				return fmt.Sprintf("I will grant that most scares fade, but oil %s is a cost shock that lands on every income statement within a quarter. Fine, buy the dip, just not in anything that burns fuel.",
					ctx.F.ChangePct(ctx.Market.Oil.ChangePct))
			}),
			fixed("Fair, history favors the buyers. My compromise: keep the core positions, but carry some gold or defense exposure as the hedge you hope to waste money on."),
		},
		bullResponse: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.DefenseStrong }), func(ctx *Context) string {
				return "Defense names are already outperforming, so that hedge is not even a drag right now. I can live with insurance that pays its own premium."
			}),
			fixed("A small hedge sleeve is reasonable. The mistake would be letting headlines shake you out of positions the fundamentals still support."),
		},
		summary: []Rule{
			when(vixAtLeast(core.VIXUneasy), fixedLine("Summing up: risk premia are elevated, and both sides agree on carrying hedges. The disagreement is only about how much.")),
			fixed("Summing up: no escalation priced in today, modest hedges as a compromise. On to earnings."),
		},
	}
}

func earningsBank() topicBank {
	return topicBank{
		intro: []Rule{
			when(func(ctx *Context) bool { return len(ctx.Stocks) > 0 }, func(ctx *Context) string {
				return fmt.Sprintf("Next, earnings. We are tracking %d names today, starting with %s.", len(ctx.Stocks), ctx.firstStockName())
			}),
			fixed("Next, earnings season. No single-name deep dives today, so let's talk about the broad profit picture."),
		},
		bear: []Rule{
			when(func(ctx *Context) bool { return ctx.badEarnings() > ctx.goodEarnings() }, func(ctx *Context) string {
				return fmt.Sprintf("The scoreboard is ugly: %d of our covered names show deteriorating earnings quality against %d improving. Margins are telling you demand is softening before the guidance does.",
					ctx.badEarnings(), ctx.goodEarnings())
			}),
			when(flag(func(f core.MarketFlags) bool { return f.USDown }), func(ctx *Context) string {
				return "Price is leading fundamentals here. Indexes selling off into earnings season means the market suspects the estimates are still too high."
			}),
			fixed("Estimates have been revised up all year, which sets the bar exactly where companies start missing it. Beat rates mean nothing when the beats are engineered against lowered whispers."),
		},
		bull: []Rule{
			when(func(ctx *Context) bool { return ctx.goodEarnings() > 0 && ctx.badEarnings() == 0 }, func(ctx *Context) string {
				return fmt.Sprintf("Every covered name with a clear signal is on the right side, %d showing genuinely strong profitability. Cash flows are real, and real cash flows compound.",
					ctx.goodEarnings())
			}),
			otherwise(func(ctx *Context) string {
				return "Profitability at the index level is near record highs and operating leverage cuts both ways. If revenue merely holds, cost discipline from the last downturn flows straight to the bottom line."
			}),
		},
		bearRebuttal: []Rule{
			when(func(ctx *Context) bool { return ctx.badEarnings() > 0 }, func(ctx *Context) string {
				return "Strong aggregates hide weak tails, and we both just watched some of our names flip to cash burn. Compromise: own the proven earners, but stop paying up for stories."
			}),
			fixed("Record margins are the risk, not the reassurance, because records mean-revert. Middle ground: stay invested, but favor balance sheets that survive a margin reset."),
		},
		bullResponse: []Rule{
			otherwise(func(ctx *Context) string {
				return "Quality over story is a compromise I will take any day. Just remember that the best businesses look expensive the entire time they are compounding."
			}),
		},
		summary: []Rule{
			when(func(ctx *Context) bool { return ctx.badEarnings() > ctx.goodEarnings() }, fixedLine("Summing up: earnings quality is split at best, and both chairs agree on favoring proven profitability over promises.")),
			fixed("Summing up: the profit engine still runs, with an agreement to pay for quality rather than narrative. Now the macro picture."),
		},
	}
}

func macroBank() topicBank {
	return topicBank{
		intro: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("On to macro. Ten-year yields sit at %.2f%% with the trend reading %s, and our cycle gauge says %s.",
					ctx.Market.Treasury10Y, ctx.Market.RateTrend, ctx.Market.CycleStage)
			}),
		},
		bear: []Rule{
			when(func(ctx *Context) bool { return ctx.Market.RateTrend == core.TrendRising }, func(ctx *Context) string {
				return "Rates are rising again, and every equity valuation model has the discount rate in the denominator. Multiples compress first, the economy feels it later."
			}),
			when(cycleIs(core.CycleRecession), func(ctx *Context) string {
				return "Our own cycle gauge reads recession. High volatility plus a negative three-month tape is not a dip, it is a trend change."
			}),
			when(cycleIs(core.CycleLate), func(ctx *Context) string {
				return "Late cycle is when the last gains get made and the first exits get crowded. Tightening into a decelerating economy has a poor track record."
			}),
			fixed("The macro calm is lagging data. Credit conditions tighten quietly for months before anything shows up in the headline numbers."),
		},
		bull: []Rule{
			when(func(ctx *Context) bool { return ctx.Market.RateTrend == core.TrendFalling }, func(ctx *Context) string {
				return "Yields are falling, which is the single most reliable tailwind equities get. Cheaper money reprices every duration asset upward, stocks included."
			}),
			when(cycleIs(core.CycleExpansion), func(ctx *Context) string {
				return fmt.Sprintf("A three-month market return of %s with volatility this low is textbook expansion. You do not fight a confirmed uptrend with macro anxiety.",
					ctx.F.ChangePct(ctx.Market.MarketReturn3M))
			}),
			fixed("The economy keeps absorbing every shock thrown at it. Employment holds, consumers spend, and the recession that is always six months away stays six months away."),
		},
		bearRebuttal: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.DollarStrong }), func(ctx *Context) string {
				return "Resilient, sure, but a strong dollar is quietly taxing every multinational's overseas earnings. Compromise: ride the trend with domestic-revenue names and keep duration short."
			}),
			fixed("The trend is your friend until the turn, and turns are only obvious afterwards. Middle ground: stay long but define your exits now, while it costs nothing."),
		},
		bullResponse: []Rule{
			otherwise(func(ctx *Context) string {
				return "Predefined exits and position sizing are just good hygiene, bull market or not. Agreed, as long as the plan does not mean sitting out the advance."
			}),
		},
		summary: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("Summing up: the cycle gauge reads %s and rates read %s. Both sides accept staying invested with explicit risk limits.",
					ctx.Market.CycleStage, ctx.Market.RateTrend)
			}),
		},
	}
}

func commoditiesBank() topicBank {
	return topicBank{
		intro: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("Commodities next. Gold %s, crude %s on the session.",
					ctx.F.ChangePct(ctx.Market.Gold.ChangePct), ctx.F.ChangePct(ctx.Market.Oil.ChangePct))
			}),
		},
		bear: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.OilUp }), func(ctx *Context) string {
				return "An oil spike is a tax on everything downstream. Airlines, chemicals, consumers, all pay it before a single CPI print reflects it."
			}),
			when(flag(func(f core.MarketFlags) bool { return f.GoldUp }), func(ctx *Context) string {
				return "Gold does not rally in healthy markets. Someone with size is paying for disaster insurance, and they usually know something."
			}),
			when(flag(func(f core.MarketFlags) bool { return f.OilDown }), func(ctx *Context) string {
				return "Crude breaking down is read as good news, but oil falls hardest when demand disappears. Cheap energy with no one buying it is a recession signal wearing a disguise."
			}),
			fixed("Flat commodities mean the reflation trade has stalled. Without pricing power upstream, the earnings growth story loses one of its legs."),
		},
		bull: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.OilDown }), func(ctx *Context) string {
				return "Falling crude is a direct rebate to consumers and margin relief for everyone who ships, flies or manufactures. Energy disinflation does the central bank's job for it."
			}),
			otherwise(func(ctx *Context) string {
				return "Commodity stability is exactly what an equity investor wants. No input-cost shock, no inflation scare, no forced policy response."
			}),
		},
		bearRebuttal: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.GoldUp }), func(ctx *Context) string {
				return "Stability, except the oldest fear gauge on earth is bid. Compromise: enjoy the margin relief but let a gold sleeve stand watch."
			}),
			fixed("Today's stability is one supply headline from ending. Middle ground: keep some real-asset exposure so a commodity shock is a rotation, not a loss."),
		},
		bullResponse: []Rule{
			otherwise(func(ctx *Context) string {
				return "A small real-asset allocation costs little and ends this argument. The core position stays in productive businesses, not in rocks and barrels."
			}),
		},
		summary: []Rule{
			otherwise(func(ctx *Context) string {
				return "Summing up: commodities are an input cost, not a portfolio, with a small hedge sleeve as the compromise. To crypto."
			}),
		},
	}
}

func cryptoBank() topicBank {
	return topicBank{
		intro: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("Crypto corner. Bitcoin is %s today, ether %s.",
					ctx.F.ChangePct(ctx.Market.BTC.ChangePct), ctx.F.ChangePct(ctx.Market.ETH.ChangePct))
			}),
		},
		bear: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.CryptoCorrelated }), func(ctx *Context) string {
				return "Bitcoin and the Nasdaq are moving in lockstep again, which demolishes the diversification pitch. It is a leveraged tech trade with custody risk, not digital gold."
			}),
			when(flag(func(f core.MarketFlags) bool { return f.BTCDown }), func(ctx *Context) string {
				return fmt.Sprintf("Bitcoin %s on no news is the asset reminding you it has no cash flows to anchor it. The floor is wherever the last leveraged long gets liquidated.",
					ctx.F.ChangePct(ctx.Market.BTC.ChangePct))
			}),
			fixed("Crypto remains a sentiment instrument. It tells you how much speculative appetite exists, and that is the only signal worth taking from it."),
		},
		bull: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.BTCUp }), func(ctx *Context) string {
				return fmt.Sprintf("Bitcoin %s is risk appetite announcing itself. The marginal speculative dollar shows up here first and in small caps second.",
					ctx.F.ChangePct(ctx.Market.BTC.ChangePct))
			}),
			otherwise(func(ctx *Context) string {
				return "The asset class survived every obituary written for it, and the institutional rails keep getting built regardless of price. A small allocation is an option on adoption."
			}),
		},
		bearRebuttal: []Rule{
			otherwise(func(ctx *Context) string {
				return "An option, priced like a certainty, is how people lose money. Compromise: size it so a total loss changes nothing about your plan."
			}),
		},
		bullResponse: []Rule{
			otherwise(func(ctx *Context) string {
				return "Sizing for survivability is the entire discipline, agreed. One percent that could ten-x beats ten percent that keeps you up at night."
			}),
		},
		summary: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.CryptoCorrelated }), fixedLine("Summing up: crypto is trading as levered tech today, so treat it as risk-on exposure, sized to be expendable.")),
			fixed("Summing up: crypto stays a small, survivable option on adoption, nothing more. Now the Korean market."),
		},
	}
}

func regionalBank() topicBank {
	return topicBank{
		intro: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("Closer to home: KOSPI %s with the won at %.0f to the dollar, against %s.",
					ctx.F.ChangePct(ctx.Market.KOSPI.ChangePct), ctx.Market.USDKRW.Level, ctx.Session.MarketLabel())
			}),
		},
		bear: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.KRWWeak && f.SemiWeak }), func(ctx *Context) string {
				return "A weak won plus weak semiconductors is the full Korean bear case in one line. The export engine is sputtering while imported costs climb."
			}),
			when(flag(func(f core.MarketFlags) bool { return f.KRWWeak }), func(ctx *Context) string {
				return fmt.Sprintf("The won above %.0f means foreign investors lose on currency even when the index goes nowhere. That flow leaves quietly and comes back late.",
					ctx.Market.USDKRW.Level)
			}),
			when(flag(func(f core.MarketFlags) bool { return f.SemiWeak }), func(ctx *Context) string {
				return "When the semiconductor complex sells off, Korea follows within days. The index is a chip proxy however much we pretend otherwise."
			}),
			fixed("Korea stays hostage to external demand. Whatever the US decides overnight, this market amplifies it by the open."),
		},
		bull: []Rule{
			when(flag(func(f core.MarketFlags) bool { return !f.KRDown }), func(ctx *Context) string {
				return "KOSPI holding firm while the pessimists list their reasons is the tell. Korean valuations already price a recession that keeps not arriving."
			}),
			otherwise(func(ctx *Context) string {
				return "Every Korean downcycle has been a buying opportunity for the patient, and the discount to global peers is at historic extremes. The governance reforms grinding forward are the rerating catalyst."
			}),
		},
		bearRebuttal: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.KRWWeak }), func(ctx *Context) string {
				return "Cheap can get cheaper when the currency leaks. Compromise: own the exporters whose dollar revenues turn won weakness into a tailwind."
			}),
			fixed("The value case has been right and early for a decade. Middle ground: hold Korea, but demand dividends and buybacks rather than promises of rerating."),
		},
		bullResponse: []Rule{
			otherwise(func(ctx *Context) string {
				return "Getting paid to wait is exactly the structure I want. Shareholder returns plus a discount is how the patient money wins here."
			}),
		},
		summary: []Rule{
			otherwise(func(ctx *Context) string {
				return "Summing up: Korea is cheap with a currency asterisk, and both sides land on exporters and shareholder-return names. Strategy next."
			}),
		},
	}
}

func strategyBank() topicBank {
	return topicBank{
		intro: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("Last debated topic: what to actually do. The regime gauge reads %s with volatility %s.",
					ctx.Market.CycleStage, ctx.Market.VIXBand)
			}),
		},
		bear: []Rule{
			when(flag(func(f core.MarketFlags) bool { return f.VeryHighVIX }), func(ctx *Context) string {
				return "With volatility this extreme the only strategy is survival. Raise cash, cut leverage to zero and let others discover where the bottom is."
			}),
			when(cycleIs(core.CycleRecession), func(ctx *Context) string {
				return "In a recession regime you sell rallies, you do not buy dips. Defensive sectors, short duration, and patience."
			}),
			when(cycleIs(core.CycleLate), func(ctx *Context) string {
				return "Late cycle calls for harvesting, not planting. Trim the winners, rotate toward quality and keep the shopping list ready for better prices."
			}),
			fixed("Whatever the regime label, expected returns from these valuations are thin. Holding more cash than feels comfortable is the contrarian trade now."),
		},
		bull: []Rule{
			when(cycleIs(core.CycleExpansion), func(ctx *Context) string {
				return "Expansion regimes reward the fully invested. Overweight the leaders, let winners run, and stop treating every green week as the top."
			}),
			when(cycleIs(core.CycleRecovery), func(ctx *Context) string {
				return "Recovery is the phase where the biggest gains hide in plain sight. Add on weakness, favor cyclicals over comfort, and extend your horizon past the next headline."
			}),
			fixed("Time in the market beats timing it, in every regime. Keep contributing, keep compounding, and let volatility be the fee you pay for equity returns."),
		},
		bearRebuttal: []Rule{
			otherwise(func(ctx *Context) string {
				return "Compounding only works for capital that survives the drawdowns. Compromise: stay invested at your target weight, but rebalance ruthlessly and keep a cash reserve for the fat pitch."
			}),
		},
		bullResponse: []Rule{
			otherwise(func(ctx *Context) string {
				return "A rebalancing discipline and dry powder I will happily sign. What I will not sign is waiting in cash for a bottom nobody rings a bell at."
			}),
		},
		summary: []Rule{
			otherwise(func(ctx *Context) string {
				return fmt.Sprintf("Summing up strategy: target weights, ruthless rebalancing, reserve cash. That is the consensus a %s regime buys you.",
					ctx.Market.CycleStage)
			}),
		},
	}
}

// fixedLine adapts a static string for use inside a conditional rule.
func fixedLine(text string) func(*Context) string {
	return func(*Context) string { return text }
}
