// internal/storage/archive/archiver_test.go
package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stocklight/stocklight/internal/core"
)

func newTestArchiver(t *testing.T) *Archiver {
	t.Helper()
	fs, err := NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewArchiver(fs)
}

func TestArchiver_MarketStateRoundTrip(t *testing.T) {
	a := newTestArchiver(t)
	ctx := context.Background()
	date := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	in := core.MarketState{
		VIX:        27.5,
		VIXBand:    core.VIXUneasy,
		SP500:      core.IndexQuote{Level: 6000, ChangePct: -1.2},
		CycleStage: core.CycleRecovery,
		Flags:      core.MarketFlags{USDown: true, HighVIX: true},
	}
	if err := a.SaveMarketState(ctx, date, in); err != nil {
		t.Fatalf("SaveMarketState: %v", err)
	}

	out, err := a.LoadMarketState(ctx, date)
	if err != nil {
		t.Fatalf("LoadMarketState: %v", err)
	}
	if out.VIX != in.VIX || out.VIXBand != in.VIXBand || out.Flags != in.Flags {
		t.Errorf("round trip mismatch:\n%+v\n%+v", in, out)
	}
}

func TestArchiver_DebateRoundTripAndOverwrite(t *testing.T) {
	a := newTestArchiver(t)
	ctx := context.Background()
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	first := DebateRecord{
		Messages: []core.DebateMessage{{ID: "opening-1", Speaker: core.SpeakerModerator, Text: "draft"}},
		Verdict:  core.Verdict{Tone: core.ToneNeutral},
	}
	if err := a.SaveDebate(ctx, date, first); err != nil {
		t.Fatal(err)
	}

	second := first
	second.Messages[0].Text = "final"
	second.Verdict.Tone = core.ToneCaution
	if err := a.SaveDebate(ctx, date, second); err != nil {
		t.Fatal(err)
	}

	got, err := a.LoadDebate(ctx, date)
	if err != nil {
		t.Fatal(err)
	}
	if got.Messages[0].Text != "final" || got.Verdict.Tone != core.ToneCaution {
		t.Errorf("same-date save should replace: %+v", got)
	}
}

func TestArchiver_Dates(t *testing.T) {
	a := newTestArchiver(t)
	ctx := context.Background()

	a.SaveMarketState(ctx, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), core.MarketState{})
	a.SaveMarketState(ctx, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), core.MarketState{})
	a.SaveDebate(ctx, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), DebateRecord{})

	dates, err := a.Dates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(dates) != 2 {
		t.Errorf("dates = %v, want 2 market snapshots", dates)
	}
}

func TestArchiver_LoadMissingWrapsArchiveFailed(t *testing.T) {
	a := newTestArchiver(t)

	_, err := a.LoadMarketState(context.Background(), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, core.ErrArchiveFailed) {
		t.Errorf("missing object should wrap archive failure, got %v", err)
	}
}
