package main

import (
	"os/signal"
	"syscall"

	"opsintel/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Load the dataset, sync the query store and serve the KPI, alert and assistant endpoints.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		e := server.New(ctx, a.Config, a.Handlers(), prometheus.DefaultGatherer)
		return server.Run(ctx, e, a.Config.Server)
	},
}
