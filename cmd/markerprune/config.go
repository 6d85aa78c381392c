package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/markerprune"
)

// positionalKeys is the argument order of "prune markers selections output mode".
var positionalKeys = []string{
	markerprune.KeyMarkers,
	markerprune.KeySelections,
	markerprune.KeyOutput,
	markerprune.KeyMode,
}

// positionalArgs accepts no arguments or all of them.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != len(positionalKeys) {
		return fmt.Errorf("expected 0 or %d arguments (markers selections output mode), got %d", len(positionalKeys), len(args))
	}
	return nil
}

// loadConfig layers defaults, the config file, MARKERPRUNE_* variables,
// flags and positional arguments, in increasing priority.
func loadConfig(cmd *cobra.Command, args []string) (markerprune.Config, error) {
	v := markerprune.NewViper()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return markerprune.Config{}, err
	}
	if err := markerprune.ReadConfigFile(v, configFile); err != nil {
		return markerprune.Config{}, err
	}
	if len(args) == len(positionalKeys) {
		for i, key := range positionalKeys {
			v.Set(key, args[i])
		}
	}
	return markerprune.LoadConfig(v)
}
