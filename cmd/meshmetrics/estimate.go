package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printforge/meshmetrics/pkg/analysis"
	"github.com/printforge/meshmetrics/pkg/stl"
)

var infillPercent float64

var estimateCmd = &cobra.Command{
	Use:   "estimate [file]",
	Short: "Estimate filament usage for printing an STL file",
	Long: `Estimate material mass and filament length for printing a model.
The volume estimate assumes a closed, consistently wound mesh.`,
	Args: cobra.ExactArgs(1),
	Run:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().Float64Var(&infillPercent, "infill", analysis.DefaultInfillPercent, "infill percentage (0-100)")
}

func runEstimate(cmd *cobra.Command, args []string) {
	filename := args[0]

	result, err := stl.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	metrics := analysis.Analyze(result.Triangles)
	estimate := analysis.EstimateMaterialUsageWithInfill(metrics.VolumeEstimate, metrics.DetectedUnit, infillPercent)

	fmt.Println("Material Estimate")
	fmt.Println("=================")
	fmt.Printf("Model volume: %s\n", analysis.FormatVolume(metrics))
	fmt.Printf("Infill: %.0f%%\n\n", infillPercent)
	fmt.Printf("Estimated mass: %.1f g\n", estimate.Grams)
	fmt.Printf("Estimated filament: %.2f m\n", estimate.FilamentMeters)
}
