package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"poker-night/internal/night"
	"poker-night/internal/report"
)

func newAllCmd(opts *options, defaultDir string) *cobra.Command {
	dir := defaultDir
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Reconstruct every export in a directory and merge the results",
		Example: `  poker-night all
  poker-night all -d logs -o all_time.json --points`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.runner()
			if err != nil {
				return err
			}
			paths, err := night.Discover(dir)
			if err != nil {
				return err
			}
			results, err := r.ReconstructAll(cmd.Context(), paths)
			if err != nil {
				return err
			}
			merged := night.Merge(results)
			if err := report.WriteTotals(cmd.OutOrStdout(), results, merged); err != nil {
				return err
			}
			if opts.outputPath == "" {
				return nil
			}
			title := "All-time profit history"
			if last := results[len(results)-1]; !last.Date.IsZero() {
				title += " as of " + last.Date.Format("2006/01/02")
			}
			chart := report.NewChart(title, opts.showEventPoints, merged)
			if err := report.SaveChart(opts.outputPath, chart); err != nil {
				return fmt.Errorf("write %s: %w", opts.outputPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", dir, "directory holding the session exports")
	return cmd
}
