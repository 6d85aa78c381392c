package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrMissingFile       = errors.New("required input file is missing")
	ErrFormat            = errors.New("unexpected selection format, expected 2 or 4 coordinates per line")
	ErrParse             = errors.New("selection coordinate is not an integer")
	ErrCoordinate        = errors.New("marker coordinate is missing or invalid")
	ErrInvalidMode       = errors.New("invalid prune mode")
	ErrMalformedDocument = errors.New("malformed marker document")
)

// SelectionError reports a selection list line that could not be turned into an area.
// It wraps ErrFormat or ErrParse.
type SelectionError struct {
	Line int
	Text string
	Err  error
}

func (e *SelectionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("selection line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("selection %q: %v", e.Text, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// CoordinateError reports a marker whose x or z attribute cannot be used.
type CoordinateError struct {
	Set       string
	Key       string
	Attribute string
	Value     string
	Missing   bool
}

func (e *CoordinateError) Error() string {
	if e.Missing {
		return fmt.Sprintf("marker %s/%s: attribute %q missing", e.Set, e.Key, e.Attribute)
	}
	return fmt.Sprintf("marker %s/%s: attribute %q has invalid value %q", e.Set, e.Key, e.Attribute, e.Value)
}

// Is lets errors.Is match ErrCoordinate.
func (e *CoordinateError) Is(target error) bool {
	return target == ErrCoordinate
}

// MissingFileError reports a required input path that does not exist.
type MissingFileError struct {
	Kind string
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing %s file: %s", e.Kind, e.Path)
}

func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}
