package main

import (
	"fmt"

	"opsintel/internal/dataset"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

var reportDay string

var reportCMD = &cobra.Command{
	Use:   "report",
	Short: "Print the daily TPV report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayFlag(reportDay)
		if err != nil {
			return err
		}

		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.Report.DailyReport(day, a.DetectionDefaults())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), a.Report.RenderReport(report))
		return nil
	},
}

func init() {
	reportCMD.Flags().StringVar(&reportDay, "day", "", "report day, latest day when omitted")
}

// parseDayFlag accepts the dataset date formats; an empty value selects the latest day
func parseDayFlag(value string) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}
	day, err := dataset.ParseDay(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --day %q: %w", value, err)
	}
	return &day, nil
}
