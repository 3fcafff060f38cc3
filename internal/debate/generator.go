// internal/debate/generator.go
package debate

import (
	"fmt"
	"time"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/format"
)

// DisplayNames maps speakers to the persona names shown in the UI.
type DisplayNames struct {
	Bull      string `mapstructure:"bull"`
	Bear      string `mapstructure:"bear"`
	Moderator string `mapstructure:"moderator"`
}

// DefaultDisplayNames returns the shipped personas.
func DefaultDisplayNames() DisplayNames {
	return DisplayNames{
		Bull:      "Bull Analyst",
		Bear:      "Bear Analyst",
		Moderator: "Moderator",
	}
}

func (d DisplayNames) nameOf(s core.Speaker) string {
	switch s {
	case core.SpeakerBull:
		return d.Bull
	case core.SpeakerBear:
		return d.Bear
	default:
		return d.Moderator
	}
}

// Generator turns a classified market snapshot into the scripted debate.
// It holds no mutable state: Generate is a pure function of its inputs,
// so identical inputs always produce an identical message sequence.
type Generator struct {
	names DisplayNames
	f     *format.Formatter
}

// NewGenerator creates a generator with the given personas.
func NewGenerator(names DisplayNames) *Generator {
	return &Generator{names: names, f: format.New()}
}

// Generate emits the full ordered debate plus the executive verdict.
// The market state must already be classified; the generator reads its
// derived flags and never recomputes them.
func (g *Generator) Generate(ms core.MarketState, stocks []Stock, sessionDate time.Time) ([]core.DebateMessage, core.Verdict) {
	ctx := &Context{
		Market:  ms,
		Stocks:  stocks,
		Session: NewSession(sessionDate),
		F:       g.f,
	}

	verdict := BuildVerdict(ms)

	var msgs []core.DebateMessage
	msgs = g.opening(msgs, ctx, verdict)
	for _, t := range debatedTopics() {
		msgs = g.runTopic(msgs, ctx, t)
	}
	msgs = g.closing(msgs, ctx, verdict)
	return msgs, verdict
}

// runTopic plays the fixed six-turn template for one debated topic.
func (g *Generator) runTopic(msgs []core.DebateMessage, ctx *Context, t debatedTopic) []core.DebateMessage {
	turns := []struct {
		speaker core.Speaker
		rules   []Rule
	}{
		{core.SpeakerModerator, t.bank.intro},
		{core.SpeakerBear, t.bank.bear},
		{core.SpeakerBull, t.bank.bull},
		{core.SpeakerBear, t.bank.bearRebuttal},
		{core.SpeakerBull, t.bank.bullResponse},
		{core.SpeakerModerator, t.bank.summary},
	}
	for i, turn := range turns {
		msgs = append(msgs, g.message(t.name, i+1, turn.speaker, firstMatch(turn.rules, ctx)))
	}
	return msgs
}

func (g *Generator) opening(msgs []core.DebateMessage, ctx *Context, v core.Verdict) []core.DebateMessage {
	intro := fmt.Sprintf("Welcome to the market debate for %s. We are working off %s: S&P 500 %s, Nasdaq %s, KOSPI %s, VIX at %.1f.",
		ctx.Session.DateLabel(), ctx.Session.MarketLabel(),
		g.f.ChangePct(ctx.Market.SP500.ChangePct), g.f.ChangePct(ctx.Market.Nasdaq.ChangePct),
		g.f.ChangePct(ctx.Market.KOSPI.ChangePct), ctx.Market.VIX)
	lineup := fmt.Sprintf("Today's call in one line: %s. Our bull and bear will argue over whether that holds, topic by topic.", v.Headline)

	msgs = append(msgs, g.message(TopicOpening, 1, core.SpeakerModerator, intro))
	return append(msgs, g.message(TopicOpening, 2, core.SpeakerModerator, lineup))
}

func (g *Generator) closing(msgs []core.DebateMessage, ctx *Context, v core.Verdict) []core.DebateMessage {
	text := fmt.Sprintf("That closes today's debate. The verdict stands: %s %s Same time tomorrow.",
		v.Headline+".", v.Detail)
	return append(msgs, g.message(TopicClosing, 1, core.SpeakerModerator, text))
}

// message assembles one turn. IDs are topic-scoped sequence numbers so a
// rerun over identical inputs reproduces them exactly.
func (g *Generator) message(topic string, seq int, speaker core.Speaker, text string) core.DebateMessage {
	return core.DebateMessage{
		ID:          fmt.Sprintf("%s-%d", topic, seq),
		Speaker:     speaker,
		DisplayName: g.names.nameOf(speaker),
		Text:        text,
		Topic:       topic,
	}
}
