package platform

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/markerprune/pkg/core"
)

// EnvPrefix is the prefix of environment variables overriding configuration.
const EnvPrefix = "MARKERPRUNE"

// Configuration keys. Flags use the same names.
const (
	KeyMarkers       = "markers"
	KeySelections    = "selections"
	KeyOutput        = "output"
	KeyMode          = "mode"
	KeyManifest      = "manifest"
	KeyWorld         = "world"
	KeySets          = "sets"
	KeyDryRun        = "dry-run"
	KeyYAMLHeader    = "yaml-header"
	KeyProgressEvery = "progress-every"
)

// Config describes one pruning run.
type Config struct {
	MarkersPath    string
	SelectionsPath string
	OutputPath     string
	ManifestPath   string
	Mode           core.PruneMode
	World          string
	SetPattern     string
	DryRun         bool
	YAMLHeader     bool
	ProgressEvery  int
}

// DefaultConfig returns the defaults of the command line tool.
func DefaultConfig() Config {
	return Config{
		MarkersPath:    "markers.yml",
		SelectionsPath: "selections.csv",
		OutputPath:     "markers_pruned.yml",
		ManifestPath:   "removed_marker_ids.txt",
		Mode:           core.Exclusive,
		World:          core.TargetWorld,
		SetPattern:     core.DefaultSetPattern,
		YAMLHeader:     true,
		ProgressEvery:  core.DefaultProgressEvery,
	}
}

// NewViper returns a viper instance holding the defaults and reading
// MARKERPRUNE_* environment variables.
func NewViper() *viper.Viper {
	d := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyMarkers, d.MarkersPath)
	v.SetDefault(KeySelections, d.SelectionsPath)
	v.SetDefault(KeyOutput, d.OutputPath)
	v.SetDefault(KeyManifest, d.ManifestPath)
	v.SetDefault(KeyMode, d.Mode.String())
	v.SetDefault(KeyWorld, d.World)
	v.SetDefault(KeySets, d.SetPattern)
	v.SetDefault(KeyDryRun, d.DryRun)
	v.SetDefault(KeyYAMLHeader, d.YAMLHeader)
	v.SetDefault(KeyProgressEvery, d.ProgressEvery)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags adds the run flags to fs. Flag defaults mirror DefaultConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String(KeyMarkers, d.MarkersPath, "Marker document to prune")
	fs.String(KeySelections, d.SelectionsPath, "Selection list (x;z regions or rx;rz;cx;cz chunks)")
	fs.String(KeyOutput, d.OutputPath, "Where to write the pruned document")
	fs.String(KeyManifest, d.ManifestPath, "Where to write the list of removed markers")
	fs.String(KeyMode, d.Mode.String(), "Prune mode: inclusive deletes inside the selection, exclusive deletes outside")
	fs.String(KeyWorld, d.World, "World whose markers are pruned")
	fs.String(KeySets, d.SetPattern, "Glob selecting the marker sets to prune")
	fs.Bool(KeyDryRun, d.DryRun, "Report what would be removed without writing files")
	fs.Bool(KeyYAMLHeader, d.YAMLHeader, "Start the output with a %YAML 1.1 directive")
	fs.Int(KeyProgressEvery, d.ProgressEvery, "Report progress every N processed markers")
}

// ReadConfigFile merges a YAML/JSON/TOML config file into v.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	mode, err := core.ParsePruneMode(v.GetString(KeyMode))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		MarkersPath:    v.GetString(KeyMarkers),
		SelectionsPath: v.GetString(KeySelections),
		OutputPath:     v.GetString(KeyOutput),
		ManifestPath:   v.GetString(KeyManifest),
		Mode:           mode,
		World:          v.GetString(KeyWorld),
		SetPattern:     v.GetString(KeySets),
		DryRun:         v.GetBool(KeyDryRun),
		YAMLHeader:     v.GetBool(KeyYAMLHeader),
		ProgressEvery:  v.GetInt(KeyProgressEvery),
	}
	return cfg, cfg.Validate()
}

// Validate checks that every required setting is present.
func (c Config) Validate() error {
	required := []struct {
		key string
		val string
	}{
		{KeyMarkers, c.MarkersPath},
		{KeySelections, c.SelectionsPath},
		{KeyOutput, c.OutputPath},
		{KeyManifest, c.ManifestPath},
		{KeyWorld, c.World},
		{KeySets, c.SetPattern},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Errorf("%s must not be empty", r.key)
		}
	}
	return nil
}
