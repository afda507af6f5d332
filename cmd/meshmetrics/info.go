package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printforge/meshmetrics/pkg/analysis"
	"github.com/printforge/meshmetrics/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometry metrics for an STL file",
	Long:  "Show dimensions, triangle and vertex counts, surface area, estimated volume, inferred units, and complexity.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	result, err := stl.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	metrics := analysis.Analyze(result.Triangles)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if result.Name != "" {
		fmt.Printf("Name: %s\n", result.Name)
	}
	format := "binary"
	if result.IsASCII {
		format = "ASCII"
	}
	fmt.Printf("File: %s (%s)\n\n", filename, format)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", metrics.TriangleCount)
	fmt.Printf("  Unique vertices: %d\n", metrics.VertexCount)
	fmt.Printf("  Complexity: %s\n", analysis.ComplexityDescription(metrics))
	fmt.Println()

	fmt.Println("Geometry:")
	fmt.Printf("  Dimensions: %s\n", analysis.FormatDimensions(metrics))
	fmt.Printf("  Aspect ratio: %s\n", metrics.AspectRatio)
	fmt.Printf("  Surface area: %s\n", analysis.FormatSurfaceArea(metrics))
	fmt.Printf("  Volume estimate: %s\n", analysis.FormatVolume(metrics))
	fmt.Println()

	fmt.Println("Units:")
	fmt.Printf("  Detected: %s (confidence: %s)\n", metrics.DetectedUnit, metrics.UnitConfidence)

	bbox := metrics.BoundingBox
	fmt.Println()
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.4f, %.4f, %.4f)\n", bbox.Min.X, bbox.Min.Y, bbox.Min.Z)
	fmt.Printf("  Max: (%.4f, %.4f, %.4f)\n", bbox.Max.X, bbox.Max.Y, bbox.Max.Z)
	fmt.Printf("  Diagonal: %.4f\n", bbox.Diagonal())
}
