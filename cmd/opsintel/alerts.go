package main

import (
	"fmt"

	"opsintel/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	alertsDay       string
	alertsThreshold string
	alertsZScore    string
)

var alertsCMD = &cobra.Command{
	Use:   "alerts",
	Short: "Detect TPV anomalies and print the formatted alerts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		opts, err := alertOptions(a.DetectionDefaults())
		if err != nil {
			return err
		}

		result, err := a.Anomaly.DetectAnomalies(opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Anomalies) == 0 {
			fmt.Fprintf(out, "Nenhuma anomalia detectada em %s\n", result.Variance.Day)
			return nil
		}
		for _, alert := range a.Formatter.FormatAlerts(result) {
			fmt.Fprintln(out, alert)
		}
		return nil
	},
}

func init() {
	alertsCMD.Flags().StringVar(&alertsDay, "day", "", "detection day, latest day when omitted")
	alertsCMD.Flags().StringVar(&alertsThreshold, "threshold", "", "alert threshold in percent (default ALERT_THRESHOLD_PCT)")
	alertsCMD.Flags().StringVar(&alertsZScore, "zscore", "", "minimum |z-score| for the 30-day anomaly")
}

// alertOptions applies the command flags over the configured defaults
func alertOptions(opts models.DetectionOptions) (models.DetectionOptions, error) {
	day, err := parseDayFlag(alertsDay)
	if err != nil {
		return opts, err
	}
	opts.Day = day

	if alertsThreshold != "" {
		threshold, err := decimal.NewFromString(alertsThreshold)
		if err != nil {
			return opts, fmt.Errorf("invalid --threshold %q: %w", alertsThreshold, err)
		}
		opts.ThresholdPct = threshold
	}

	if alertsZScore != "" {
		zscore, err := decimal.NewFromString(alertsZScore)
		if err != nil {
			return opts, fmt.Errorf("invalid --zscore %q: %w", alertsZScore, err)
		}
		opts.ZScoreThreshold = decimal.NewNullDecimal(zscore)
	}

	return opts, nil
}
