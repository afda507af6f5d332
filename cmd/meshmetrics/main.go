package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printforge/meshmetrics/version"
)

var rootCmd = &cobra.Command{
	Use:   "meshmetrics",
	Short: "A CLI tool for analyzing and ingesting STL mesh files",
	Long: `meshmetrics analyzes STL (Stereolithography) files in both ASCII and
binary formats. It reports dimensions, surface area, volume, inferred units,
and complexity, estimates filament usage, and can batch-ingest whole design
directories with duplicate detection and version tracking.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
