package platform

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/markerprune/pkg/core"
)

// options holds the internal wiring for a run.
type options struct {
	logger   *slog.Logger
	progress func(core.Progress)
	onRun    func(*Report, error)
	debounce time.Duration
}

// Option defines a functional option for configuring a run.
type Option func(*options)

// defaultOptions returns the default wiring.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress registers a callback for filter pass progress.
// It fires every Config.ProgressEvery processed markers.
func WithProgress(fn func(core.Progress)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithRunHandler is called after every run started by Watch.
func WithRunHandler(fn func(*Report, error)) Option {
	return func(o *options) {
		o.onRun = fn
	}
}

// WithDebounce sets how long Watch waits for file writes to settle.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
