package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/markerprune"
	"github.com/aretw0/markerprune/pkg/core"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", Args: positionalArgs}
	markerprune.RegisterFlags(cmd.Flags())
	return cmd
}

func TestPositionalArgs(t *testing.T) {
	cmd := newTestCommand()
	assert.NoError(t, positionalArgs(cmd, nil))
	assert.NoError(t, positionalArgs(cmd, []string{"a", "b", "c", "inclusive"}))
	assert.Error(t, positionalArgs(cmd, []string{"a"}))
	assert.Error(t, positionalArgs(cmd, []string{"a", "b", "c", "d", "e"}))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(newTestCommand(), nil)
		require.NoError(t, err)
		assert.Equal(t, markerprune.DefaultConfig(), cfg)
	})

	t.Run("positional arguments win over flags", func(t *testing.T) {
		cmd := newTestCommand()
		require.NoError(t, cmd.Flags().Parse([]string{"--mode", "exclusive", "--world", "survival"}))

		cfg, err := loadConfig(cmd, []string{"in.yml", "sel.csv", "out.yml", "inclusive"})
		require.NoError(t, err)
		assert.Equal(t, "in.yml", cfg.MarkersPath)
		assert.Equal(t, "sel.csv", cfg.SelectionsPath)
		assert.Equal(t, "out.yml", cfg.OutputPath)
		assert.Equal(t, core.Inclusive, cfg.Mode)
		assert.Equal(t, "survival", cfg.World)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := loadConfig(newTestCommand(), []string{"in.yml", "sel.csv", "out.yml", "sideways"})
		assert.ErrorIs(t, err, core.ErrInvalidMode)
	})
}

func TestPruneCommand(t *testing.T) {
	dir := t.TempDir()
	markers := filepath.Join(dir, "markers.yml")
	selections := filepath.Join(dir, "selections.csv")
	output := filepath.Join(dir, "out.yml")

	require.NoError(t, os.WriteFile(markers, []byte(`sets:
  markers:
    markers:
      home: {world: world, x: 20.0, y: 70.0, z: 20.0, label: Home}
      mine: {world: world, x: 2000.0, y: 12.0, z: 20.0, label: Mine}
`), 0644))
	require.NoError(t, os.WriteFile(selections, []byte("0;0\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"prune", markers, selections, output, "exclusive",
		"--manifest", filepath.Join(dir, "removed.txt")})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Found 1 markers to delete out of 2 markers in total.")
	manifest, err := os.ReadFile(filepath.Join(dir, "removed.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Mine\t(id mine)\n", string(manifest))
}

func TestSelectionsCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selections.csv")
	require.NoError(t, os.WriteFile(path, []byte("1;-1\n0;0;2;3\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"selections", path, "--json"})
	require.NoError(t, rootCmd.Execute())

	var views []selectionView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "region", views[0].Kind)
	assert.Equal(t, core.NewSelectionArea(1, -1, core.RegionSize), views[0].SelectionArea)
	assert.Equal(t, "chunk", views[1].Kind)
	assert.Equal(t, core.NewSelectionArea(2, 3, core.ChunkSize), views[1].SelectionArea)
}
