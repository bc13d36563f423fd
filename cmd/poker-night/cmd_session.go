package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"poker-night/internal/report"
)

func newSessionCmd(opts *options) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Reconstruct one session export",
		Example: `  poker-night session -i poker_night_20220707.csv
  poker-night session -i poker_night_20220707.csv -o night.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.runner()
			if err != nil {
				return err
			}
			res, err := r.ReconstructFile(input)
			if err != nil {
				return err
			}
			if err := report.WriteSession(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if opts.outputPath == "" {
				return nil
			}
			title := "Profit for " + res.Date.Format("2006/01/02")
			chart := report.NewChart(title, opts.showEventPoints, res.Ledger.Series())
			if err := report.SaveChart(opts.outputPath, chart); err != nil {
				return fmt.Errorf("write %s: %w", opts.outputPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "session export (CSV)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
