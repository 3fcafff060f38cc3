package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stocklight/stocklight/internal/logger"
)

var debateDate string

var debateCmd = &cobra.Command{
	Use:   "debate",
	Short: "Generate today's debate script and print it as JSON",
	RunE:  runDebate,
}

func init() {
	debateCmd.Flags().StringVar(&debateDate, "date", "", "session date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(debateCmd)
}

func runDebate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.Must(logMode(cfg))
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	application, _, err := buildApp(cfg, log)
	if err != nil {
		return err
	}

	at := time.Now()
	if debateDate != "" {
		at, err = time.Parse("2006-01-02", debateDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	msgs, verdict := application.Debate(ctx, at)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"date":     at.Format("2006-01-02"),
		"messages": msgs,
		"verdict":  verdict,
	})
}
