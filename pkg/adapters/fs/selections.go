package fs

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/markerprune/pkg/core"
)

// SelectionSeparator separates the fields of a selection line.
const SelectionSeparator = ';'

// ReadSelections parses a selection list: one region ("x;z") or chunk
// ("regionX;regionZ;chunkX;chunkZ") per line. Blank lines are skipped and a
// leading BOM is ignored. Fields follow CSV quoting, so a stray quote is a
// parse error. Errors report the line of the file.
func ReadSelections(r io.Reader) (*core.SelectionSet, error) {
	reader := csv.NewReader(r)
	reader.Comma = SelectionSeparator
	reader.FieldsPerRecord = -1

	var (
		lines [][]string
		rows  []int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &core.SelectionError{Line: pe.StartLine, Text: pe.Err.Error(), Err: core.ErrParse}
			}
			return nil, fmt.Errorf("failed to read selections: %w", err)
		}
		if len(lines) == 0 && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		row, _ := reader.FieldPos(0)
		lines = append(lines, record)
		rows = append(rows, row)
	}

	set, err := core.ParseSelections(lines)
	if err != nil {
		var se *core.SelectionError
		if errors.As(err, &se) && se.Line > 0 && se.Line <= len(rows) {
			se.Line = rows[se.Line-1]
		}
		return nil, err
	}
	return set, nil
}

// LoadSelections reads the selection list at path.
func LoadSelections(path string) (*core.SelectionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &core.MissingFileError{Kind: "selections", Path: path}
		}
		return nil, fmt.Errorf("failed to open selections: %w", err)
	}
	defer f.Close()

	set, err := ReadSelections(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
