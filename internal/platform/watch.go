package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/markerprune/pkg/adapters/fs"
	"github.com/aretw0/markerprune/pkg/adapters/lifecycle"
)

// ErrOutputIsInput is returned by Watch when the output would overwrite the watched marker document.
var ErrOutputIsInput = errors.New("output must differ from the marker document in watch mode")

// Watch runs once and then again every time the marker document or the
// selection list changes, until ctx is done. Failed runs are logged and
// reported to the run handler; they do not stop the watch.
func Watch(ctx context.Context, cfg Config, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	same, err := samePath(cfg.OutputPath, cfg.MarkersPath)
	if err != nil {
		return err
	}
	if same {
		return ErrOutputIsInput
	}
	if err := checkPaths(cfg); err != nil {
		return err
	}

	watcher, err := fs.NewWatcher(
		[]string{cfg.MarkersPath, cfg.SelectionsPath},
		fs.WithDebounce(o.debounce),
		fs.WithWatchLogger(o.logger),
	)
	if err != nil {
		return err
	}
	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}
	o.logger.DebugContext(ctx, "watcher ready", "state", watcher.State())

	source := lifecycle.NewSource(changes)
	if err := source.Start(ctx); err != nil {
		return err
	}

	runOnce := func() {
		report, err := Run(ctx, cfg, opts...)
		if err != nil && ctx.Err() == nil {
			o.logger.ErrorContext(ctx, "prune run failed", "error", err)
		}
		if o.onRun != nil {
			o.onRun(report, err)
		}
	}

	runOnce()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-source.Events():
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher stopped")
			}
			o.logger.InfoContext(ctx, "change detected", "event", ev.String())
			runOnce()
		}
	}
}
