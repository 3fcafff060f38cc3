package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/stocklight/stocklight/internal/core"
	"github.com/stocklight/stocklight/internal/debate"
	"github.com/stocklight/stocklight/internal/marketstate"
	"github.com/stocklight/stocklight/internal/refdata"
	"github.com/stocklight/stocklight/internal/sector"
	"github.com/stocklight/stocklight/internal/signal"
)

type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Providers  ProvidersConfig   `mapstructure:"providers"`
	Signal     signal.Thresholds `mapstructure:"signal"`
	Market     MarketConfig      `mapstructure:"market"`
	Sector     SectorConfig      `mapstructure:"sector"`
	Debate     DebateConfig      `mapstructure:"debate"`
	Archive    ArchiveConfig     `mapstructure:"archive"`
	Metrics    MetricsConfig     `mapstructure:"metrics"`
	Universe   []refdata.Entry   `mapstructure:"universe"`
	ValueChain []ValueChainEntry `mapstructure:"value_chain"`
}

type ServerConfig struct {
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	Mode   string `mapstructure:"mode"`
	APIKey string `mapstructure:"api_key"`
}

type ProvidersConfig struct {
	Yahoo YahooConfig `mapstructure:"yahoo"`
	Dart  DartConfig  `mapstructure:"dart"`
}

type YahooConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
}

type DartConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// MarketConfig binds the regime thresholds to the instruments whose
// quotes feed the snapshot.
type MarketConfig struct {
	Thresholds marketstate.Thresholds `mapstructure:"thresholds"`
	Symbols    SymbolsConfig          `mapstructure:"symbols"`
	// Extra quotes fetched into the snapshot's symbol map, flag symbols
	// like the semiconductor and defense ETFs included.
	Watch []string `mapstructure:"watch"`
}

// SymbolsConfig names the upstream symbols for each snapshot field.
type SymbolsConfig struct {
	SP500       string `mapstructure:"sp500"`
	Nasdaq      string `mapstructure:"nasdaq"`
	Dow         string `mapstructure:"dow"`
	KOSPI       string `mapstructure:"kospi"`
	KOSDAQ      string `mapstructure:"kosdaq"`
	VIX         string `mapstructure:"vix"`
	Treasury10Y string `mapstructure:"treasury_10y"`
	DollarIndex string `mapstructure:"dollar_index"`
	Gold        string `mapstructure:"gold"`
	Oil         string `mapstructure:"oil"`
	USDKRW      string `mapstructure:"usdkrw"`
	BTC         string `mapstructure:"btc"`
	ETH         string `mapstructure:"eth"`
	SOL         string `mapstructure:"sol"`
}

// SectorConfig lists the sector proxies and the grading thresholds.
type SectorConfig struct {
	Thresholds sector.Thresholds `mapstructure:"thresholds"`
	Benchmark  string            `mapstructure:"benchmark"`
	Sectors    []SectorEntry     `mapstructure:"sectors"`
}

type SectorEntry struct {
	Name   string `mapstructure:"name"`
	Symbol string `mapstructure:"symbol"`
}

type ValueChainEntry struct {
	Stage  string `mapstructure:"stage"`
	Symbol string `mapstructure:"symbol"`
}

type DebateConfig struct {
	Personas debate.DisplayNames `mapstructure:"personas"`
}

type ArchiveConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Type    string   `mapstructure:"type"` // "localfs" or "s3"
	Path    string   `mapstructure:"path"` // For localfs
	S3      S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults. Every threshold table
// ships with its documented cutoffs so a minimal config file only names
// the server and providers.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Mode: "release",
		},
		Providers: ProvidersConfig{
			Yahoo: YahooConfig{Enabled: true},
		},
		Signal: signal.DefaultThresholds(),
		Market: MarketConfig{
			Thresholds: marketstate.DefaultThresholds(),
			Symbols: SymbolsConfig{
				SP500:       "^GSPC",
				Nasdaq:      "^IXIC",
				Dow:         "^DJI",
				KOSPI:       "^KS11",
				KOSDAQ:      "^KQ11",
				VIX:         "^VIX",
				Treasury10Y: "^TNX",
				DollarIndex: "DX-Y.NYB",
				Gold:        "GC=F",
				Oil:         "CL=F",
				USDKRW:      "KRW=X",
				BTC:         "BTC-USD",
				ETH:         "ETH-USD",
				SOL:         "SOL-USD",
			},
			Watch: []string{marketstate.SymbolSemis, marketstate.SymbolDefense},
		},
		Sector: SectorConfig{
			Thresholds: sector.DefaultThresholds(),
			Benchmark:  "^GSPC",
			Sectors: []SectorEntry{
				{Name: "technology", Symbol: "XLK"},
				{Name: "semiconductor", Symbol: "SMH"},
				{Name: "energy", Symbol: "XLE"},
				{Name: "financials", Symbol: "XLF"},
				{Name: "healthcare", Symbol: "XLV"},
				{Name: "defense", Symbol: "ITA"},
			},
		},
		Debate: DebateConfig{
			Personas: debate.DefaultDisplayNames(),
		},
		Archive: ArchiveConfig{
			Type: "localfs",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Providers.Dart.Enabled && c.Providers.Dart.APIKey == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("dart api_key required when dart provider is enabled"))
	}

	switch c.Archive.Type {
	case "", "localfs":
		if c.Archive.Enabled && c.Archive.Path == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("archive path required for localfs archive"))
		}
	case "s3":
		if c.Archive.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("s3 bucket required for s3 archive"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown archive type: %s", c.Archive.Type))
	}

	if err := validateBands(c.Signal); err != nil {
		return err
	}

	for _, e := range c.Universe {
		if e.Ticker == "" {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("universe entry with empty ticker (name: %q)", e.Name))
		}
	}
	for _, s := range c.Sector.Sectors {
		if s.Symbol == "" {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("sector %q has no symbol", s.Name))
		}
	}
	for _, s := range c.ValueChain {
		if s.Symbol == "" {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("value chain stage %q has no symbol", s.Stage))
		}
	}

	return nil
}

// validateBands rejects threshold bands whose good and bad cutoffs are
// ordered against their direction, which would make every value classify
// the same way.
func validateBands(t signal.Thresholds) error {
	bands := map[string]signal.Band{
		"roe":              t.ROE,
		"operating_margin": t.OperatingMargin,
		"net_margin":       t.NetMargin,
		"debt_to_equity":   t.DebtToEquity,
		"current_ratio":    t.CurrentRatio,
		"revenue_growth":   t.RevenueGrowth,
		"pe":               t.PE,
		"peg":              t.PEG,
		"pb":               t.PB,
	}
	for name, b := range bands {
		if b.HigherIsBetter && b.Good <= b.Bad {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("threshold %s: good (%v) must exceed bad (%v)", name, b.Good, b.Bad))
		}
		if !b.HigherIsBetter && b.Good >= b.Bad {
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("threshold %s: good (%v) must be below bad (%v)", name, b.Good, b.Bad))
		}
	}
	return nil
}
