package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/markerprune"
	"github.com/aretw0/markerprune/pkg/adapters/fs"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Prune again whenever the markers or the selections change",
	Long: `Watch prunes once and then again every time the marker document or the
selection list is written, until interrupted. The output must not be the marker
document itself.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		return markerprune.Watch(ctx, cfg,
			markerprune.WithLogger(slog.Default()),
			markerprune.WithDebounce(watchDebounce),
			markerprune.WithRunHandler(func(r *markerprune.Report, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
				fmt.Fprintf(out, "Removed %d of %d markers in %s.\n", r.Deleted.Len(), r.Total, r.Duration.Round(time.Millisecond))
			}),
		)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	markerprune.RegisterFlags(watchCmd.Flags())
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", fs.DefaultDebounce, "How long to wait for writes to settle")
}
