package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PruneMode selects which side of the selection gets deleted.
type PruneMode int

const (
	// Exclusive deletes markers outside every selected area.
	Exclusive PruneMode = iota
	// Inclusive deletes markers inside any selected area.
	Inclusive
)

func (m PruneMode) String() string {
	switch m {
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("PruneMode(%d)", int(m))
	}
}

// ParsePruneMode parses "inclusive" or "exclusive" (case-insensitive).
func ParsePruneMode(s string) (PruneMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inclusive":
		return Inclusive, nil
	case "exclusive":
		return Exclusive, nil
	default:
		return Exclusive, fmt.Errorf("%w: %q (want inclusive or exclusive)", ErrInvalidMode, s)
	}
}

// ShouldDelete applies the pruning policy for the TargetWorld.
func ShouldDelete(world string, x, z int, selections *SelectionSet, mode PruneMode) bool {
	return MarkerFilter{World: TargetWorld, Selections: selections, Mode: mode}.ShouldDelete(world, x, z)
}

// MarkerFilter decides whether a marker is deleted.
type MarkerFilter struct {
	World      string
	Selections *SelectionSet
	Mode       PruneMode
}

// Governs reports whether markers of world are candidates at all.
func (f MarkerFilter) Governs(world string) bool {
	return world == f.World
}

// ShouldDelete returns true when the marker must be removed.
//
//	world match | area match | inclusive | exclusive
//	no          | -          | keep      | keep
//	yes         | yes        | delete    | keep
//	yes         | no         | keep      | delete
func (f MarkerFilter) ShouldDelete(world string, x, z int) bool {
	if !f.Governs(world) {
		return false
	}
	_, matched := f.Selections.FindMatch(x, z)
	if matched {
		return f.Mode == Inclusive
	}
	return f.Mode == Exclusive
}

// ParseCoordinate parses a decimal coordinate independent of locale and
// truncates it toward zero.
func ParseCoordinate(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return 0, false
	}
	return int(t), true
}
