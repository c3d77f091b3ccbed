package main

import (
	"fmt"
	"os"

	"github.com/hkoenig/stlmeta/pkg/analysis"
	"github.com/hkoenig/stlmeta/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display human-readable information about an STL file",
	Long:  "Show format, triangle count, validity findings, dimensions and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	findings := analysis.Inspect(model)
	result := analysis.Measure(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.HasName() {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Format: %s\n\n", model.Format)

	fmt.Println("Validity:")
	fmt.Printf("  Triangles: %d\n", findings.TriangleCount)
	fmt.Printf("  Facet winding consistent: %v\n", findings.AllFacetsClockwise)
	fmt.Printf("  Facet normals correct: %v\n", findings.AllNormalsCorrect)
	fmt.Printf("  All coordinates non-negative: %v\n\n", findings.AllCoordinatesNonNegative)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
