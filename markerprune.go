package markerprune

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/markerprune/internal/platform"
	"github.com/aretw0/markerprune/pkg/core"
)

// --- Types ---

// Config describes one pruning run.
type Config = platform.Config

// Report is the outcome of a run.
type Report = platform.Report

// PruneMode selects which side of the selection is deleted.
type PruneMode = core.PruneMode

// Prune modes.
const (
	Exclusive = core.Exclusive
	Inclusive = core.Inclusive
)

// ErrOutputIsInput is returned by Watch when the output path equals the marker document.
var ErrOutputIsInput = platform.ErrOutputIsInput

// ErrPathConflict is returned when an output would overwrite an input or the other output.
var ErrPathConflict = platform.ErrPathConflict

// --- Configuration ---

// Configuration keys. Flags and MARKERPRUNE_* environment variables use the same names.
const (
	KeyMarkers       = platform.KeyMarkers
	KeySelections    = platform.KeySelections
	KeyOutput        = platform.KeyOutput
	KeyMode          = platform.KeyMode
	KeyManifest      = platform.KeyManifest
	KeyWorld         = platform.KeyWorld
	KeySets          = platform.KeySets
	KeyDryRun        = platform.KeyDryRun
	KeyYAMLHeader    = platform.KeyYAMLHeader
	KeyProgressEvery = platform.KeyProgressEvery
)

// Option defines a functional option for configuring a run.
type Option = platform.Option

// DefaultConfig returns the defaults of the command line tool.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithProgress registers a callback for filter pass progress.
func WithProgress(fn func(core.Progress)) Option {
	return platform.WithProgress(fn)
}

// WithRunHandler is called after every run started by Watch.
func WithRunHandler(fn func(*Report, error)) Option {
	return platform.WithRunHandler(fn)
}

// WithDebounce sets how long Watch waits for file writes to settle.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// NewViper returns a viper instance holding the defaults and reading
// MARKERPRUNE_* environment variables.
func NewViper() *viper.Viper {
	return platform.NewViper()
}

// RegisterFlags adds the run flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	platform.RegisterFlags(fs)
}

// ReadConfigFile merges a config file into v.
func ReadConfigFile(v *viper.Viper, path string) error {
	return platform.ReadConfigFile(v, path)
}

// LoadConfig builds a Config from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	return platform.LoadConfig(v)
}

// --- Operations ---

// Run prunes the marker document once.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	return platform.Run(ctx, cfg, opts...)
}

// Watch runs once and again on every change of the inputs until ctx is done.
func Watch(ctx context.Context, cfg Config, opts ...Option) error {
	return platform.Watch(ctx, cfg, opts...)
}
