package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/markerprune"
	"github.com/aretw0/markerprune/pkg/adapters/fs"
	"github.com/aretw0/markerprune/pkg/core"
)

var selectionsJSON bool

type selectionView struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	core.SelectionArea
}

var selectionsCmd = &cobra.Command{
	Use:   "selections [path]",
	Short: "Print the areas of a selection list",
	Long: `Selections parses a selection list and prints every area it covers in
block coordinates. Outputs a table by default, or a JSON array with --json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			path = cfg.SelectionsPath
		}

		set, err := fs.LoadSelections(path)
		if err != nil {
			return err
		}

		views := make([]selectionView, 0, set.Len())
		for i, area := range set.Areas() {
			views = append(views, selectionView{Index: i, Kind: areaKind(area), SelectionArea: area})
		}

		out := cmd.OutOrStdout()
		if selectionsJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(views)
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tKIND\tX\tZ")
		for _, v := range views {
			fmt.Fprintf(w, "%d\t%s\t[%d, %d)\t[%d, %d)\n", v.Index, v.Kind, v.StartX, v.EndX, v.StartZ, v.EndZ)
		}
		return w.Flush()
	},
}

func areaKind(a core.SelectionArea) string {
	if a.Size() == core.ChunkSize {
		return "chunk"
	}
	return "region"
}

func init() {
	rootCmd.AddCommand(selectionsCmd)
	selectionsCmd.Flags().BoolVar(&selectionsJSON, "json", false, "Output in JSON format")
	selectionsCmd.Flags().String(markerprune.KeySelections, markerprune.DefaultConfig().SelectionsPath, "Selection list to read")
}
