package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/markerprune/pkg/adapters/fs"
	"github.com/aretw0/markerprune/pkg/core"
)

func TestReadSelections(t *testing.T) {
	src := "\ufeff0;0\r\n1;2;0;5\n\n 3 ; -4 \n"

	set, err := fs.ReadSelections(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadSelections failed: %v", err)
	}

	want := []core.SelectionArea{
		core.NewSelectionArea(0, 0, core.RegionSize),
		core.NewSelectionArea(0, 5, core.ChunkSize),
		core.NewSelectionArea(3, -4, core.RegionSize),
	}
	got := set.Areas()
	if len(got) != len(want) {
		t.Fatalf("expected %d areas, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("area %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadSelections_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantErr  error
		wantLine int
	}{
		{"three fields", "0;0\n1;2;3\n", core.ErrFormat, 2},
		{"five fields", "1;2;3;4;5\n", core.ErrFormat, 1},
		{"not a number", "0;0\n\nx;1\n", core.ErrParse, 3},
		{"stray quote", "0;0\n0\";1\n", core.ErrParse, 2},
		{"unterminated quote", "\"0;1\n", core.ErrParse, 1},
		{"cell out of range", "0;0\n0;0;0;9999999999\n", core.ErrParse, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fs.ReadSelections(strings.NewReader(tc.src))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			var se *core.SelectionError
			if !errors.As(err, &se) {
				t.Fatalf("expected *core.SelectionError, got %T", err)
			}
			if se.Line != tc.wantLine {
				t.Errorf("expected line %d, got %d", tc.wantLine, se.Line)
			}
		})
	}
}

func TestReadSelections_QuotedFields(t *testing.T) {
	set, err := fs.ReadSelections(strings.NewReader("\"1\";\"-2\"\n"))
	if err != nil {
		t.Fatalf("ReadSelections failed: %v", err)
	}
	if got, want := set.Areas(), core.NewSelectionArea(1, -2, core.RegionSize); len(got) != 1 || got[0] != want {
		t.Errorf("got %+v, want [%+v]", got, want)
	}
}

func TestLoadSelections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selections.csv")

	if _, err := fs.LoadSelections(path); !errors.Is(err, core.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}

	if err := os.WriteFile(path, []byte("0;0\n0;0;1;1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	set, err := fs.LoadSelections(path)
	if err != nil {
		t.Fatalf("LoadSelections failed: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("expected 2 areas, got %d", set.Len())
	}
}
