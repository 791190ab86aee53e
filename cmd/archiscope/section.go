package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/internal/section"
	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/pkg/dxf"
	"github.com/quantcla/archiscope/pkg/scene"
	"github.com/quantcla/archiscope/pkg/stl"
)

var (
	sectionHeight float64
	sectionOutput string
)

var sectionCmd = &cobra.Command{
	Use:   "section [file]",
	Short: "Cut a model at a height and report the cross-section",
	Long: `Apply a horizontal section cut at the given height and report the closed
contours of the cross-section: vertex counts, perimeters and enclosed
areas. Optionally write the contours as DXF polylines.`,
	Args: cobra.ExactArgs(1),
	Run:  runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0.0, "Cut height in world units")
	sectionCmd.Flags().StringVarP(&sectionOutput, "output", "o", "", "Write contours as DXF polylines")
	sectionCmd.MarkFlagRequired("height") //nolint:errcheck
}

func runSection(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	sc := scene.NewScene()
	sc.Add(scene.SurfaceFromModel(model.Name, model))

	engine := section.NewEngine(sc, snapping.NewCutConfig(), zap.NewNop())
	engine.SetHeight(sectionHeight)

	contours := engine.Contours()
	areas := engine.ContourAreas()

	fmt.Println("Section Cut")
	fmt.Println("===========")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Height: %.6f\n", sectionHeight)
	fmt.Printf("Contours: %d\n", len(contours))

	for i, contour := range contours {
		fmt.Printf("\nContour %d:\n", i+1)
		fmt.Printf("  Vertices: %d\n", len(contour))
		fmt.Printf("  Perimeter: %.6f units\n", section.ContourLength(contour))
		fmt.Printf("  Area: %.6f square units\n", areas[i])
	}

	if sectionOutput == "" {
		return
	}

	w := dxf.NewWriter()
	for _, contour := range contours {
		vertices := make([][2]float64, len(contour))
		for i, v := range contour {
			vertices[i] = [2]float64{v.X, v.Z}
		}
		w.Polyline(dxf.DefaultLayer, vertices, true)
	}
	if err := os.WriteFile(sectionOutput, []byte(w.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", sectionOutput, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\nWrote %s\n", sectionOutput)
}
