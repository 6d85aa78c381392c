package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultSetPattern selects the "markers" set, the set Dynmap stores
// player-placed markers in.
const DefaultSetPattern = "markers"

// DefaultProgressEvery is how many processed markers separate two progress reports.
const DefaultProgressEvery = 5

// Progress is reported while the filter pass runs.
type Progress struct {
	Processed int
	Total     int
	Found     int
}

// Percent returns the processed share in percent.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Processed) / float64(p.Total) * 100
}

// Result is the outcome of one pruning run.
type Result struct {
	Sets      []string
	Total     int
	Processed int
	Deleted   *DeletionRecord
	Removed   int
}

// Pruner runs the filter pass and the removal pass over a MarkerDocument.
type Pruner struct {
	filter        MarkerFilter
	setPattern    string
	logger        *slog.Logger
	progress      func(Progress)
	progressEvery int
}

// PrunerOption configures a Pruner.
type PrunerOption func(*Pruner)

// WithWorld overrides the governed world tag.
func WithWorld(world string) PrunerOption {
	return func(p *Pruner) {
		p.filter.World = world
	}
}

// WithSetPattern selects the marker sets to prune with a doublestar glob.
func WithSetPattern(pattern string) PrunerOption {
	return func(p *Pruner) {
		p.setPattern = pattern
	}
}

// WithPrunerLogger sets the logger used for per-marker reporting.
func WithPrunerLogger(logger *slog.Logger) PrunerOption {
	return func(p *Pruner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithProgress registers a callback invoked every n processed markers.
// n <= 0 uses DefaultProgressEvery.
func WithProgress(n int, fn func(Progress)) PrunerOption {
	return func(p *Pruner) {
		if n <= 0 {
			n = DefaultProgressEvery
		}
		p.progressEvery = n
		p.progress = fn
	}
}

// NewPruner creates a Pruner for the given selections and mode.
func NewPruner(selections *SelectionSet, mode PruneMode, opts ...PrunerOption) (*Pruner, error) {
	p := &Pruner{
		filter: MarkerFilter{
			World:      TargetWorld,
			Selections: selections,
			Mode:       mode,
		},
		setPattern:    DefaultSetPattern,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(p)
	}

	if !doublestar.ValidatePattern(p.setPattern) {
		return nil, fmt.Errorf("invalid set pattern %q", p.setPattern)
	}
	return p, nil
}

// Prune runs both passes and leaves doc amended in place.
func (p *Pruner) Prune(doc MarkerDocument) (*Result, error) {
	res, err := p.Collect(doc)
	if err != nil {
		return nil, err
	}
	res.Removed = p.Apply(doc, res.Deleted)
	return res, nil
}

// Collect runs the filter pass without modifying doc.
func (p *Pruner) Collect(doc MarkerDocument) (*Result, error) {
	sets := p.selectSets(doc)

	type group struct {
		set     string
		markers []Marker
	}
	var groups []group
	total := 0
	for _, set := range sets {
		// Circles are visited before points.
		for _, kind := range []GroupKind{GroupCircles, GroupPoints} {
			markers, err := doc.Markers(set, kind)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group{set: set, markers: markers})
			total += len(markers)
		}
	}

	res := &Result{Sets: sets, Total: total, Deleted: NewDeletionRecord()}
	p.logger.Info("start pruning", "markers", total, "mode", p.filter.Mode.String(), "sets", sets)

	for _, g := range groups {
		for _, m := range g.markers {
			if err := p.visit(m, res); err != nil {
				return nil, err
			}
			res.Processed++
			if p.progress != nil && res.Processed%p.progressEvery == 0 {
				p.progress(Progress{Processed: res.Processed, Total: total, Found: res.Deleted.Len()})
			}
		}
	}

	p.logger.Info("filter pass finished", "found", res.Deleted.Len(), "total", total)
	return res, nil
}

func (p *Pruner) visit(m Marker, res *Result) error {
	if !p.filter.Governs(m.World()) {
		return nil
	}
	x, z, err := m.Coordinates()
	if err != nil {
		return err
	}
	if !p.filter.ShouldDelete(m.World(), x, z) {
		return nil
	}

	d := Deletion{Set: m.Set, Key: m.Key, Label: m.Label(), X: x, Z: z}
	if res.Deleted.Add(d) {
		p.logger.Info("found marker to delete", "id", m.Key, "label", d.Label, "x", x, "z", z)
	}
	return nil
}

// Apply removes every recorded deletion from doc. A key is taken from the
// point grouping when the point under that key is itself deleted by the
// filter, otherwise from the circle grouping, so it is never removed twice
// and an unmatched marker sharing the key survives.
func (p *Pruner) Apply(doc MarkerDocument, record *DeletionRecord) int {
	points := make(map[string]map[string]bool)
	removed := 0
	for _, d := range record.Entries() {
		candidates, ok := points[d.Set]
		if !ok {
			candidates = p.pointCandidates(doc, d.Set)
			points[d.Set] = candidates
		}

		switch {
		case candidates[d.Key] && doc.Remove(d.Set, GroupPoints, d.Key):
			removed++
		case doc.Remove(d.Set, GroupCircles, d.Key):
			removed++
		default:
			p.logger.Warn("recorded marker not found during removal", "set", d.Set, "id", d.Key)
		}
	}
	return removed
}

// pointCandidates returns the keys of the point markers of set the filter deletes.
func (p *Pruner) pointCandidates(doc MarkerDocument, set string) map[string]bool {
	markers, err := doc.Markers(set, GroupPoints)
	if err != nil {
		return nil
	}
	keys := make(map[string]bool, len(markers))
	for _, m := range markers {
		if p.deletes(m) {
			keys[m.Key] = true
		}
	}
	return keys
}

func (p *Pruner) deletes(m Marker) bool {
	if !p.filter.Governs(m.World()) {
		return false
	}
	x, z, err := m.Coordinates()
	return err == nil && p.filter.ShouldDelete(m.World(), x, z)
}

func (p *Pruner) selectSets(doc MarkerDocument) []string {
	var sets []string
	for _, name := range doc.SetNames() {
		// The pattern is validated in NewPruner, so Match cannot fail here.
		if ok, _ := doublestar.Match(p.setPattern, name); ok {
			sets = append(sets, name)
		}
	}
	return sets
}
