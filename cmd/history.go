package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"ics-diff/core/config"
	"ics-diff/core/report"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists or shows stored reports.
var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List stored diff reports or show one",
	Long: `Without arguments, lists the newest stored reports. With a report ID,
prints that report in the selected --format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of reports to list (0 for all)")
	historyCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format for a single report (text, json)")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		rec, err := store.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if outputFormat == "json" {
			fmt.Fprintln(out, rec.Body)
			return nil
		}
		pairs, err := rec.DiffPairs()
		if err != nil {
			return err
		}
		return report.Text(out, pairs, false)
	}

	records, err := store.List(ctx, historyLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tLEFT\tRIGHT\tSUMMARY")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.LeftSource, r.RightSource,
			report.FormatStats(r.Stats(), false))
	}
	return w.Flush()
}
