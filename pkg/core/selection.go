package core

import (
	"errors"
	"strconv"
	"strings"
)

// Cell sizes of the selection grid.
const (
	RegionSize = 512
	ChunkSize  = 16
)

// SelectionArea is the half-open rectangle [StartX, EndX) x [StartZ, EndZ).
type SelectionArea struct {
	StartX int `json:"start_x"`
	StartZ int `json:"start_z"`
	EndX   int `json:"end_x"`
	EndZ   int `json:"end_z"`
}

// NewSelectionArea builds the area covered by grid cell (cellX, cellZ).
// cellSize must be positive.
func NewSelectionArea(cellX, cellZ, cellSize int) SelectionArea {
	startX := cellX * cellSize
	startZ := cellZ * cellSize
	return SelectionArea{
		StartX: startX,
		StartZ: startZ,
		EndX:   startX + cellSize,
		EndZ:   startZ + cellSize,
	}
}

// Size returns the edge length of the area.
func (a SelectionArea) Size() int {
	return a.EndX - a.StartX
}

// Contains reports whether (x, z) lies inside the area.
func (a SelectionArea) Contains(x, z int) bool {
	return x >= a.StartX && x < a.EndX && z >= a.StartZ && z < a.EndZ
}

// SelectionSet is an ordered list of areas. It is not modified after it is built.
type SelectionSet struct {
	areas []SelectionArea
}

// NewSelectionSet returns a set over a copy of areas.
func NewSelectionSet(areas ...SelectionArea) *SelectionSet {
	return &SelectionSet{areas: append([]SelectionArea(nil), areas...)}
}

// ParseSelections builds a set from already split selection lines.
// Line numbers in errors are 1-based positions in lines.
func ParseSelections(lines [][]string) (*SelectionSet, error) {
	areas := make([]SelectionArea, 0, len(lines))
	for i, fields := range lines {
		area, err := ParseSelectionLine(fields)
		if err != nil {
			var se *SelectionError
			if errors.As(err, &se) {
				se.Line = i + 1
			}
			return nil, err
		}
		areas = append(areas, area)
	}
	return &SelectionSet{areas: areas}, nil
}

// ParseSelectionLine turns one selection line into an area.
// Two fields are a region cell, four fields are a chunk cell where only the
// last two fields are used.
func ParseSelectionLine(fields []string) (SelectionArea, error) {
	var xField, zField string
	var size int

	switch len(fields) {
	case 2:
		xField, zField, size = fields[0], fields[1], RegionSize
	case 4:
		xField, zField, size = fields[2], fields[3], ChunkSize
	default:
		return SelectionArea{}, &SelectionError{Text: strings.Join(fields, ";"), Err: ErrFormat}
	}

	x, err := parseCell(xField)
	if err != nil {
		return SelectionArea{}, &SelectionError{Text: strings.Join(fields, ";"), Err: ErrParse}
	}
	z, err := parseCell(zField)
	if err != nil {
		return SelectionArea{}, &SelectionError{Text: strings.Join(fields, ";"), Err: ErrParse}
	}

	return NewSelectionArea(x, z, size), nil
}

// parseCell parses a cell index. Cells are 32-bit, so the block coordinates
// derived from them cannot overflow.
func parseCell(field string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Len returns the number of areas.
func (s *SelectionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.areas)
}

// Areas returns a copy of the areas in input order.
func (s *SelectionSet) Areas() []SelectionArea {
	if s == nil {
		return nil
	}
	return append([]SelectionArea(nil), s.areas...)
}

// FindMatch returns the index of the first area containing (x, z).
func (s *SelectionSet) FindMatch(x, z int) (int, bool) {
	if s == nil {
		return -1, false
	}
	for i, a := range s.areas {
		if a.Contains(x, z) {
			return i, true
		}
	}
	return -1, false
}
