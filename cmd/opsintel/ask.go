package main

import (
	"fmt"
	"io"
	"strings"

	"opsintel/internal/models"

	"github.com/spf13/cobra"
)

const printedRows = 20

var (
	askMode        string
	askNoInterpret bool
)

var askCMD = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a question about the dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		mode := a.DefaultMode()
		if askMode != "" {
			mode = models.EngineMode(strings.ToLower(askMode))
		}
		interpret := a.Config.LLM.Interpret && !askNoInterpret

		answer, err := a.Assistant.Ask(cmd.Context(), strings.Join(args, " "), mode, interpret)
		if answer != nil {
			printOutcome(cmd.OutOrStdout(), answer.Outcome)
			if answer.Interpretation != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", answer.Interpretation)
			}
		}
		return err
	},
}

var compareCMD = &cobra.Command{
	Use:   "compare [question]",
	Short: "Run a question on both engines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		comparison, err := a.Assistant.CompareEngines(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, outcome := range []*models.EngineOutcome{comparison.SQL, comparison.Tabular} {
			if outcome != nil {
				printOutcome(out, *outcome)
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}

func init() {
	askCMD.Flags().StringVar(&askMode, "mode", "", "engine mode: auto, sql or tabular")
	askCMD.Flags().BoolVar(&askNoInterpret, "no-interpret", false, "skip the result interpretation")
}

func printOutcome(out io.Writer, outcome models.EngineOutcome) {
	fmt.Fprintf(out, "[%s] %s\n", outcome.Engine, outcome.Query)
	if outcome.Error != "" {
		fmt.Fprintf(out, "erro: %s\n", outcome.Error)
		return
	}
	fmt.Fprint(out, outcome.Result.Render(printedRows))
}
