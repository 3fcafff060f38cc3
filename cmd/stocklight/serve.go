package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stocklight/stocklight/internal/api"
	"github.com/stocklight/stocklight/internal/app"
	"github.com/stocklight/stocklight/internal/config"
	"github.com/stocklight/stocklight/internal/logger"
	"github.com/stocklight/stocklight/internal/metrics"
	"github.com/stocklight/stocklight/internal/provider/dart"
	"github.com/stocklight/stocklight/internal/provider/yahoo"
	"github.com/stocklight/stocklight/internal/storage/archive"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Stocklight server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.Must(logMode(cfg))
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	application, reg, err := buildApp(cfg, log)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg, application, reg, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

// logMode picks the logger mode, with --debug overriding the config.
func logMode(cfg *config.Config) string {
	if debug {
		return "development"
	}
	return cfg.Server.Mode
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildApp assembles the orchestrator and its optional side channels
// from configuration.
func buildApp(cfg *config.Config, log *zap.Logger) (*app.App, *metrics.Registry, error) {
	quotes := yahoo.New()
	if cfg.Providers.Yahoo.BaseURL != "" {
		quotes = yahoo.NewWithBaseURL(cfg.Providers.Yahoo.BaseURL)
	}

	application := app.New(cfg, quotes, log)

	if cfg.Providers.Dart.Enabled {
		disclosures := dart.New(cfg.Providers.Dart.APIKey)
		if cfg.Providers.Dart.BaseURL != "" {
			disclosures = dart.NewWithBaseURL(cfg.Providers.Dart.APIKey, cfg.Providers.Dart.BaseURL)
		}
		application.SetDisclosures(disclosures)
	}

	if cfg.Archive.Enabled {
		backend, err := buildArchiveBackend(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("creating archive backend: %w", err)
		}
		application.SetArchiver(archive.NewArchiver(backend))
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		application.SetMetrics(reg)
	}

	return application, reg, nil
}

func buildArchiveBackend(cfg *config.Config) (archive.Backend, error) {
	switch cfg.Archive.Type {
	case "s3":
		return archive.NewS3(archive.S3Config{
			Bucket:    cfg.Archive.S3.Bucket,
			Endpoint:  cfg.Archive.S3.Endpoint,
			Region:    cfg.Archive.S3.Region,
			AccessKey: cfg.Archive.S3.AccessKey,
			SecretKey: cfg.Archive.S3.SecretKey,
			Prefix:    cfg.Archive.S3.Prefix,
		})
	default:
		return archive.NewLocalFS(cfg.Archive.Path)
	}
}
