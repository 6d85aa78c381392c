package markerprune_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/markerprune"
)

func Example() {
	dir, err := os.MkdirTemp("", "markerprune-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	markers := `sets:
  markers:
    label: Markers
    markers:
      spawn: {world: world, x: 12.5, y: 64.0, z: -3.0, label: Spawn}
      farm: {world: world, x: 900.0, y: 64.0, z: 40.0, label: Farm}
`
	_ = os.WriteFile(filepath.Join(dir, "markers.yml"), []byte(markers), 0644)
	_ = os.WriteFile(filepath.Join(dir, "selections.csv"), []byte("0;-1\n"), 0644)

	cfg := markerprune.DefaultConfig()
	cfg.MarkersPath = filepath.Join(dir, "markers.yml")
	cfg.SelectionsPath = filepath.Join(dir, "selections.csv")
	cfg.OutputPath = filepath.Join(dir, "markers_pruned.yml")
	cfg.ManifestPath = filepath.Join(dir, "removed_marker_ids.txt")

	report, err := markerprune.Run(context.Background(), cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range report.Deleted.Entries() {
		fmt.Printf("removed %s (%s)\n", d.Key, d.Label)
	}
	fmt.Println("spawn removed:", report.Deleted.Contains("markers", "spawn"))

	// Output:
	// removed farm (Farm)
	// spawn removed: false
}
