package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/markerprune/pkg/adapters/fs"
	"github.com/aretw0/markerprune/pkg/core"
)

// ErrPathConflict is returned when an output would overwrite an input or the other output.
var ErrPathConflict = errors.New("conflicting paths")

// Report is the outcome of Run.
type Report struct {
	*core.Result
	Config   Config
	Written  bool
	Duration time.Duration
}

// Run loads the selections and the marker document, prunes it and, unless
// cfg.DryRun is set, writes the pruned document and the deletions manifest.
// Nothing is written when any step before saving fails.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkPaths(cfg); err != nil {
		return nil, err
	}
	if err := checkInputs(cfg); err != nil {
		return nil, err
	}

	start := time.Now()

	selections, err := fs.LoadSelections(cfg.SelectionsPath)
	if err != nil {
		return nil, err
	}
	o.logger.InfoContext(ctx, "selections loaded", "path", cfg.SelectionsPath, "areas", selections.Len())

	doc, err := fs.LoadDocument(cfg.MarkersPath)
	if err != nil {
		return nil, err
	}
	o.logger.InfoContext(ctx, "markers loaded", "path", cfg.MarkersPath)

	prunerOpts := []core.PrunerOption{
		core.WithWorld(cfg.World),
		core.WithSetPattern(cfg.SetPattern),
		core.WithPrunerLogger(o.logger),
	}
	if o.progress != nil {
		prunerOpts = append(prunerOpts, core.WithProgress(cfg.ProgressEvery, o.progress))
	}
	pruner, err := core.NewPruner(selections, cfg.Mode, prunerOpts...)
	if err != nil {
		return nil, err
	}
	o.logger.DebugContext(ctx, "pruner ready", "state", pruner.State())

	res, err := pruner.Prune(doc)
	if err != nil {
		return nil, err
	}

	report := &Report{Result: res, Config: cfg}
	if cfg.DryRun {
		report.Duration = time.Since(start)
		o.logger.InfoContext(ctx, "dry run, nothing written", "found", res.Deleted.Len(), "total", res.Total)
		return report, nil
	}

	if err := doc.WriteFile(cfg.OutputPath, cfg.YAMLHeader); err != nil {
		return nil, fmt.Errorf("failed to save pruned markers: %w", err)
	}
	if err := fs.WriteManifest(cfg.ManifestPath, res.Deleted.Entries()); err != nil {
		return nil, fmt.Errorf("failed to save manifest: %w", err)
	}

	report.Written = true
	report.Duration = time.Since(start)
	o.logger.InfoContext(ctx, "pruned markers saved",
		"output", cfg.OutputPath,
		"manifest", cfg.ManifestPath,
		"removed", res.Removed,
		"total", res.Total,
		"duration", report.Duration,
	)
	return report, nil
}

// checkInputs reports the first required input that does not exist.
func checkInputs(cfg Config) error {
	inputs := []struct {
		kind string
		path string
	}{
		{"markers", cfg.MarkersPath},
		{"selections", cfg.SelectionsPath},
	}
	for _, in := range inputs {
		if _, err := os.Stat(in.path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return &core.MissingFileError{Kind: in.kind, Path: in.path}
			}
			return fmt.Errorf("failed to stat %s: %w", in.path, err)
		}
	}
	return nil
}

// checkPaths rejects outputs that would replace the selection list, the
// manifest replacing the marker document, and both outputs sharing a file.
// Writing the pruned document over the marker document is allowed.
func checkPaths(cfg Config) error {
	pairs := []struct {
		a, b       string
		aKey, bKey string
	}{
		{cfg.OutputPath, cfg.SelectionsPath, KeyOutput, KeySelections},
		{cfg.ManifestPath, cfg.MarkersPath, KeyManifest, KeyMarkers},
		{cfg.ManifestPath, cfg.SelectionsPath, KeyManifest, KeySelections},
		{cfg.OutputPath, cfg.ManifestPath, KeyOutput, KeyManifest},
	}
	for _, p := range pairs {
		same, err := samePath(p.a, p.b)
		if err != nil {
			return err
		}
		if same {
			return fmt.Errorf("%w: %s and %s both point to %s", ErrPathConflict, p.aKey, p.bKey, p.a)
		}
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
