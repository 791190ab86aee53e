package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantcla/archiscope/pkg/analysis"
	"github.com/quantcla/archiscope/pkg/scene"
	"github.com/quantcla/archiscope/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a model",
	Long:  "Show dimensions, triangle count, surface area and edge statistics for an STL model.",
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

	sc := scene.NewScene()
	sc.Add(scene.SurfaceFromModel(model.Name, model))
	stats := analysis.Analyze(sc)

	fmt.Println("Model Information")
	fmt.Println("=================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Statistics:")
	fmt.Printf("  Triangles: %d\n", stats.TriangleCount)
	fmt.Printf("  Edges: %d\n", stats.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", stats.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(stats.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(stats.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(stats.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", stats.Dimensions.X)
	fmt.Printf("  Height (Y): %.6f units\n", stats.Dimensions.Y)
	fmt.Printf("  Depth (Z): %.6f units\n", stats.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", stats.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", stats.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", stats.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", stats.AvgEdgeLength)
}
