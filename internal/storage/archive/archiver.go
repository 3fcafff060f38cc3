// internal/storage/archive/archiver.go
package archive

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stocklight/stocklight/internal/core"
)

// Layout: market/<date>.json holds the classified snapshot, debate/<date>.json
// the generated script and verdict. One object per day; a rerun on the same
// date replaces the previous object.
const (
	marketPrefix = "market"
	debatePrefix = "debate"
	dateLayout   = "2006-01-02"
)

// DebateRecord bundles what a debate run produced.
type DebateRecord struct {
	Messages []core.DebateMessage `json:"messages"`
	Verdict  core.Verdict         `json:"verdict"`
}

// Archiver persists daily market snapshots and debate scripts to a
// backend. Failures wrap ErrArchiveFailed so callers can log and move on;
// archiving is write-behind and never blocks a response.
type Archiver struct {
	backend Backend
}

// NewArchiver creates an archiver over the given backend.
func NewArchiver(b Backend) *Archiver {
	return &Archiver{backend: b}
}

// SaveMarketState stores the classified snapshot under its session date.
func (a *Archiver) SaveMarketState(ctx context.Context, date time.Time, ms core.MarketState) error {
	return a.save(ctx, marketPrefix, date, ms)
}

// LoadMarketState retrieves the snapshot archived for a date.
func (a *Archiver) LoadMarketState(ctx context.Context, date time.Time) (core.MarketState, error) {
	var ms core.MarketState
	err := a.load(ctx, marketPrefix, date, &ms)
	return ms, err
}

// SaveDebate stores a generated script and verdict under its session date.
func (a *Archiver) SaveDebate(ctx context.Context, date time.Time, rec DebateRecord) error {
	return a.save(ctx, debatePrefix, date, rec)
}

// LoadDebate retrieves the script archived for a date.
func (a *Archiver) LoadDebate(ctx context.Context, date time.Time) (DebateRecord, error) {
	var rec DebateRecord
	err := a.load(ctx, debatePrefix, date, &rec)
	return rec, err
}

// Dates lists the session dates with an archived market snapshot, in
// backend order.
func (a *Archiver) Dates(ctx context.Context) ([]time.Time, error) {
	paths, err := a.backend.List(ctx, marketPrefix)
	if err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, err)
	}
	var dates []time.Time
	for _, p := range paths {
		base := p
		if i := len(marketPrefix) + 1; len(base) > i {
			base = base[i:]
		}
		base = trimJSON(base)
		if d, err := time.Parse(dateLayout, base); err == nil {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func (a *Archiver) save(ctx context.Context, prefix string, date time.Time, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	if err := a.backend.Write(ctx, objectPath(prefix, date), data); err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	return nil
}

func (a *Archiver) load(ctx context.Context, prefix string, date time.Time, v any) error {
	data, err := a.backend.Read(ctx, objectPath(prefix, date))
	if err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return core.WrapError(core.ErrArchiveFailed, err)
	}
	return nil
}

func objectPath(prefix string, date time.Time) string {
	return prefix + "/" + date.Format(dateLayout) + ".json"
}

func trimJSON(s string) string {
	const ext = ".json"
	if len(s) > len(ext) && s[len(s)-len(ext):] == ext {
		return s[:len(s)-len(ext)]
	}
	return s
}
