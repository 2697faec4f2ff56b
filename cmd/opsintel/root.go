package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"opsintel/internal/app"
	"opsintel/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	datasetPath string
	verbose     bool
)

var rootCMD = &cobra.Command{
	Use:   "opsintel",
	Short: "Operational intelligence over the transactions dataset",
	Long: `A CLI and HTTP API computing daily KPIs, multi-horizon TPV variances and
anomaly alerts over the transactions dataset, with a natural-language assistant
backed by a local language model.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.PersistentFlags().StringVar(&datasetPath, "dataset", "", "path to the transactions CSV (overrides DATASET_PATH)")
	rootCMD.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCMD.AddCommand(serveCMD, reportCMD, alertsCMD, askCMD, compareCMD, migrateCMD)
}

// loadConfig reads the environment and applies the persistent flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogger(cfg)
	return cfg, nil
}

// setupLogger installs a JSON handler in production and a text handler elsewhere
func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// bootstrap loads the configuration and wires the application
func bootstrap(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, slog.Default(), prometheus.DefaultRegisterer)
}
