// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/debate"
	"github.com/stocklight/stocklight/internal/format"
	"github.com/stocklight/stocklight/internal/fundamental"
	"github.com/stocklight/stocklight/internal/indicator"
	"github.com/stocklight/stocklight/internal/marketstate"
	"github.com/stocklight/stocklight/internal/metrics"
	"github.com/stocklight/stocklight/internal/provider"
	"github.com/stocklight/stocklight/internal/provider/dart"
	"github.com/stocklight/stocklight/internal/refdata"
	"github.com/stocklight/stocklight/internal/sector"
	"github.com/stocklight/stocklight/internal/signal"
	"github.com/stocklight/stocklight/internal/storage/archive"
)

// Lookback windows, in calendar days, sized so the trading-day offsets
// the indicators use are always covered.
const (
	closesLookbackDays = 400
	monthLookbackDays  = 45
)

// StockReport is the full per-ticker payload served to the UI.
type StockReport struct {
	Ticker   string                  `json:"ticker"`
	Name     string                  `json:"name"`
	Sector   string                  `json:"sector,omitempty"`
	Snapshot *core.FinancialSnapshot `json:"snapshot"`
	Signals  core.SignalResult       `json:"signals"`
	Cards    []core.MetricCard       `json:"cards"`
}

// App wires the providers to the pure core. All derivations happen in
// the core packages; App only fetches, assembles and records.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	quotes      provider.QuoteProvider
	disclosures provider.DisclosureProvider // nil when filings are disabled

	engine     *signal.Engine
	classifier *marketstate.Classifier
	sectors    *sector.Analyzer
	generator  *debate.Generator
	directory  *refdata.Directory
	formatter  *format.Formatter

	archiver *archive.Archiver // nil when archiving is disabled
	metrics  *metrics.Registry // nil when metrics are disabled
}

// New creates the orchestrator.
func New(cfg *config.Config, quotes provider.QuoteProvider, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:        cfg,
		logger:     logger,
		quotes:     quotes,
		engine:     signal.NewEngine(cfg.Signal),
		classifier: marketstate.New(cfg.Market.Thresholds),
		sectors:    sector.New(cfg.Sector.Thresholds),
		generator:  debate.NewGenerator(cfg.Debate.Personas),
		directory:  refdata.New(cfg.Universe),
		formatter:  format.New(),
	}
}

// SetArchiver enables write-behind snapshot archiving.
func (a *App) SetArchiver(ar *archive.Archiver) { a.archiver = ar }

// SetDisclosures enables the filing supplement for universe entries that
// carry a registrant code.
func (a *App) SetDisclosures(d provider.DisclosureProvider) { a.disclosures = d }

// SetMetrics enables business metric recording.
func (a *App) SetMetrics(reg *metrics.Registry) {
	a.metrics = reg
	if reg != nil {
		reg.SetUniverseSize(len(a.cfg.Universe))
	}
}

// Directory exposes the reference mapping for search handlers.
func (a *App) Directory() *refdata.Directory { return a.directory }

// StockReport fetches, normalizes and classifies one ticker. The input
// may be a ticker, a display name or an alias; unresolvable input is
// passed through as a ticker and the provider decides whether it exists.
func (a *App) StockReport(ctx context.Context, query string) (*StockReport, error) {
	ticker, name, sect, corpCode := query, query, "", ""
	if e, ok := a.directory.Resolve(query); ok {
		ticker, name, sect, corpCode = e.Ticker, e.Name, e.Sector, e.CorpCode
	}

	start := time.Now()
	raw, err := a.quotes.FetchFundamentals(ctx, ticker)
	a.recordProvider("yahoo", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	raw.Name = name

	if a.disclosures != nil && corpCode != "" && len(raw.Annual) < 2 {
		a.supplementFromFilings(ctx, corpCode, raw)
	}

	snap, err := fundamental.Normalize(raw)
	if err != nil {
		return nil, err
	}

	signals := a.engine.Compute(snap)
	a.recordSignals(signals)

	return &StockReport{
		Ticker:   ticker,
		Name:     name,
		Sector:   sect,
		Snapshot: snap,
		Signals:  signals,
		Cards:    a.engine.Cards(snap, a.formatter),
	}, nil
}

// supplementFromFilings fills in missing annual history from regulatory
// filings. Yahoo carries thin statements for many Korean listings; the
// filed figures restore the two periods the growth fallback chain wants.
// Filing failures leave the record as fetched.
func (a *App) supplementFromFilings(ctx context.Context, corpCode string, raw *fundamental.Raw) {
	latest := time.Now().Year() - 1

	var annual []fundamental.AnnualFigures
	for year := latest; year > latest-2; year-- {
		start := time.Now()
		st, err := a.disclosures.FetchStatement(ctx, corpCode, year)
		a.recordProvider("dart", err, time.Since(start))
		if err != nil {
			a.logger.Debug("filing fetch degraded",
				zap.String("corp_code", corpCode), zap.Int("year", year), zap.Error(err))
			continue
		}

		fig := fundamental.AnnualFigures{Year: fmt.Sprintf("FY%d", year)}
		if v, ok := st.FindAny(dart.AccountRevenue...); ok {
			fig.Revenue = core.Float(v)
		}
		if v, ok := st.FindAny(dart.AccountNetIncome...); ok {
			fig.NetIncome = core.Float(v)
		}
		if v, ok := st.FindAny(dart.AccountOperatingIncome...); ok {
			fig.OperatingIncome = core.Float(v)
		}
		if fig.Revenue != nil || fig.NetIncome != nil {
			annual = append(annual, fig)
		}
	}

	if len(annual) > len(raw.Annual) {
		raw.Annual = annual
	}
}

// MarketState assembles and classifies the market snapshot. Every fetch
// is optional: a failed series keeps its documented default and the
// classification proceeds on what arrived.
func (a *App) MarketState(ctx context.Context) core.MarketState {
	ms := marketstate.DefaultSnapshot()
	sym := a.cfg.Market.Symbols

	var wg sync.WaitGroup
	var mu sync.Mutex

	fetchQuote := func(symbol string, apply func(core.IndexQuote)) {
		if symbol == "" {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := a.quotes.FetchQuote(ctx, symbol)
			if err != nil {
				a.logger.Debug("quote fetch degraded",
					zap.String("symbol", symbol), zap.Error(err))
				return
			}
			mu.Lock()
			apply(q)
			mu.Unlock()
		}()
	}

	fetchQuote(sym.SP500, func(q core.IndexQuote) { ms.SP500 = q })
	fetchQuote(sym.Nasdaq, func(q core.IndexQuote) { ms.Nasdaq = q })
	fetchQuote(sym.Dow, func(q core.IndexQuote) { ms.Dow = q })
	fetchQuote(sym.KOSPI, func(q core.IndexQuote) { ms.KOSPI = q })
	fetchQuote(sym.KOSDAQ, func(q core.IndexQuote) { ms.KOSDAQ = q })
	fetchQuote(sym.VIX, func(q core.IndexQuote) { ms.VIX = q.Level })
	fetchQuote(sym.Treasury10Y, func(q core.IndexQuote) { ms.Treasury10Y = q.Level })
	fetchQuote(sym.DollarIndex, func(q core.IndexQuote) { ms.DollarIndex = q.Level })
	fetchQuote(sym.Gold, func(q core.IndexQuote) { ms.Gold = q })
	fetchQuote(sym.Oil, func(q core.IndexQuote) { ms.Oil = q })
	fetchQuote(sym.USDKRW, func(q core.IndexQuote) { ms.USDKRW = q })
	fetchQuote(sym.BTC, func(q core.IndexQuote) { ms.BTC = q })
	fetchQuote(sym.ETH, func(q core.IndexQuote) { ms.ETH = q })
	fetchQuote(sym.SOL, func(q core.IndexQuote) { ms.SOL = q })

	for _, symbol := range a.cfg.Market.Watch {
		symbol := symbol
		fetchQuote(symbol, func(q core.IndexQuote) { ms.Quotes[symbol] = q })
	}

	// Trend inputs need short histories rather than single quotes.
	wg.Add(3)
	go func() {
		defer wg.Done()
		if closes, err := a.quotes.FetchCloses(ctx, sym.SP500, closesLookbackDays); err == nil {
			mu.Lock()
			ms.MarketReturn3M = indicator.Return(closes, 63)
			mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if closes, err := a.quotes.FetchCloses(ctx, sym.Treasury10Y, monthLookbackDays); err == nil && len(closes) > 22 {
			mu.Lock()
			ms.Treasury10YChange1M = closes[len(closes)-1] - closes[len(closes)-23]
			mu.Unlock()
		}
	}()
	go func() {
		defer wg.Done()
		if closes, err := a.quotes.FetchCloses(ctx, sym.DollarIndex, monthLookbackDays); err == nil {
			mu.Lock()
			ms.DollarChangePct1M = indicator.Return(closes, 22)
			mu.Unlock()
		}
	}()

	wg.Wait()

	ms.AsOf = time.Now().UTC()
	return a.classifier.Classify(ms)
}

// Debate produces the scripted narrative for a session. Stock context
// comes from the configured universe; tickers that fail to resolve are
// skipped rather than failing the script.
func (a *App) Debate(ctx context.Context, sessionDate time.Time) ([]core.DebateMessage, core.Verdict) {
	ms := a.MarketState(ctx)
	stocks := a.debateStocks(ctx)

	msgs, verdict := a.generator.Generate(ms, stocks, sessionDate)

	if a.metrics != nil {
		a.metrics.RecordDebate(string(verdict.Tone))
	}
	a.archiveSession(sessionDate, ms, msgs, verdict)

	return msgs, verdict
}

func (a *App) debateStocks(ctx context.Context) []debate.Stock {
	entries := a.directory.All()
	stocks := make([]debate.Stock, len(entries))

	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Add(1)
		go func(i int, e refdata.Entry) {
			defer wg.Done()
			raw, err := a.quotes.FetchFundamentals(ctx, e.Ticker)
			if err != nil {
				a.logger.Debug("debate stock skipped",
					zap.String("ticker", e.Ticker), zap.Error(err))
				return
			}
			snap, err := fundamental.Normalize(raw)
			if err != nil {
				return
			}
			stocks[i] = debate.Stock{
				Ticker:  e.Ticker,
				Name:    e.Name,
				Signals: a.engine.Compute(snap),
			}
		}(i, e)
	}
	wg.Wait()

	out := stocks[:0]
	for _, s := range stocks {
		if s.Ticker != "" {
			out = append(out, s)
		}
	}
	return out
}

// archiveSession persists the snapshot and script without blocking the
// response. Failures are logged and counted, never surfaced.
func (a *App) archiveSession(date time.Time, ms core.MarketState, msgs []core.DebateMessage, v core.Verdict) {
	if a.archiver == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		status := "ok"
		if err := a.archiver.SaveMarketState(ctx, date, ms); err != nil {
			status = "error"
			a.logger.Warn("market snapshot archive failed", zap.Error(err))
		}
		if err := a.archiver.SaveDebate(ctx, date, archive.DebateRecord{Messages: msgs, Verdict: v}); err != nil {
			status = "error"
			a.logger.Warn("debate archive failed", zap.Error(err))
		}
		if a.metrics != nil {
			a.metrics.RecordArchiveWrite(status)
		}
	}()
}

// Sectors grades every configured sector proxy against the benchmark.
// Proxies whose history cannot be fetched are skipped.
func (a *App) Sectors(ctx context.Context) []core.SectorRecord {
	bench := a.benchmarkCloses(ctx)

	records := make([]core.SectorRecord, len(a.cfg.Sector.Sectors))
	var wg sync.WaitGroup
	for i, s := range a.cfg.Sector.Sectors {
		wg.Add(1)
		go func(i int, s config.SectorEntry) {
			defer wg.Done()
			closes, err := a.quotes.FetchCloses(ctx, s.Symbol, closesLookbackDays)
			if err != nil {
				a.logger.Debug("sector skipped", zap.String("symbol", s.Symbol), zap.Error(err))
				return
			}
			records[i] = a.sectors.Sector(s.Name, s.Symbol, closes, bench)
		}(i, s)
	}
	wg.Wait()

	out := records[:0]
	for _, r := range records {
		if r.Symbol != "" {
			out = append(out, r)
		}
	}
	return out
}

// ValueChain grades the configured supply-chain stages.
func (a *App) ValueChain(ctx context.Context) []core.ValueChainStage {
	bench := a.benchmarkCloses(ctx)

	stages := make([]core.ValueChainStage, len(a.cfg.ValueChain))
	var wg sync.WaitGroup
	for i, s := range a.cfg.ValueChain {
		wg.Add(1)
		go func(i int, s config.ValueChainEntry) {
			defer wg.Done()
			closes, err := a.quotes.FetchCloses(ctx, s.Symbol, closesLookbackDays)
			if err != nil {
				a.logger.Debug("stage skipped", zap.String("symbol", s.Symbol), zap.Error(err))
				return
			}
			stages[i] = a.sectors.Stage(s.Stage, s.Symbol, closes, bench)
		}(i, s)
	}
	wg.Wait()

	out := stages[:0]
	for _, st := range stages {
		if st.Symbol != "" {
			out = append(out, st)
		}
	}
	return out
}

func (a *App) benchmarkCloses(ctx context.Context) []float64 {
	closes, err := a.quotes.FetchCloses(ctx, a.cfg.Sector.Benchmark, closesLookbackDays)
	if err != nil {
		a.logger.Debug("benchmark history degraded", zap.Error(err))
		return nil
	}
	return closes
}

func (a *App) recordProvider(name string, err error, d time.Duration) {
	if a.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	a.metrics.RecordProviderRequest(name, outcome, d.Seconds())
}

func (a *App) recordSignals(r core.SignalResult) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordSignal(string(core.DimensionEarning), string(r.Earning.Status))
	a.metrics.RecordSignal(string(core.DimensionDebt), string(r.Debt.Status))
	a.metrics.RecordSignal(string(core.DimensionGrowth), string(r.Growth.Status))
	a.metrics.RecordSignal(string(core.DimensionValuation), string(r.Valuation.Status))
}
