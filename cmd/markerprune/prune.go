package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/markerprune"
	"github.com/aretw0/markerprune/pkg/core"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [markers selections output mode]",
	Short: "Prune the marker document once",
	Long: `Prune removes the markers of the target world that lie inside (inclusive)
or outside (exclusive) the selected areas, then writes the pruned document and
the manifest of removed markers.

Either pass no arguments and use flags, or pass all four paths and the mode:

  markerprune prune markers.yml selections.csv markers_pruned.yml inclusive`,
	Args: positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		logger := slog.Default()
		report, err := markerprune.Run(context.Background(), cfg,
			markerprune.WithLogger(logger),
			markerprune.WithProgress(func(p core.Progress) {
				logger.Info("progress",
					"processed", p.Processed,
					"total", p.Total,
					"percent", fmt.Sprintf("%.1f", p.Percent()),
				)
			}),
		)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d markers to delete out of %d markers in total.\n", report.Deleted.Len(), report.Total)
		if !report.Written {
			fmt.Fprintln(out, "Dry run, nothing written.")
			return nil
		}
		fmt.Fprintf(out, "Modified YAML saved to: %s\n", cfg.OutputPath)
		fmt.Fprintf(out, "Removed marker ids saved to: %s\n", cfg.ManifestPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	markerprune.RegisterFlags(pruneCmd.Flags())
}
