package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/markerprune"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of markerprune",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "markerprune version %s\n", strings.TrimSpace(markerprune.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
