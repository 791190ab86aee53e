package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/internal/config"
	"github.com/quantcla/archiscope/internal/measure"
	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
	"github.com/quantcla/archiscope/pkg/stl"
)

var (
	exportX1, exportY1, exportZ1 float64
	exportX2, exportY2, exportZ2 float64
	exportOutput                 string
	exportNoSnap                 bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Measure a distance in a model and export it as DXF",
	Long: `Create a line measurement between two points, snapping each endpoint to
the model the way the viewer does, and write the DXF serialization to a
file or stdout.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Float64Var(&exportX1, "x1", 0.0, "X coordinate of first point")
	exportCmd.Flags().Float64Var(&exportY1, "y1", 0.0, "Y coordinate of first point")
	exportCmd.Flags().Float64Var(&exportZ1, "z1", 0.0, "Z coordinate of first point")
	exportCmd.Flags().Float64Var(&exportX2, "x2", 0.0, "X coordinate of second point")
	exportCmd.Flags().Float64Var(&exportY2, "y2", 0.0, "Y coordinate of second point")
	exportCmd.Flags().Float64Var(&exportZ2, "z2", 0.0, "Z coordinate of second point")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportNoSnap, "no-snap", false, "Use the raw points without snapping")

	exportCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runExport(cmd *cobra.Command, args []string) {
	filename := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	sc := scene.NewScene()
	sc.Add(scene.SurfaceFromModel(model.Name, model))

	p1 := geometry.NewVector3(exportX1, exportY1, exportZ1)
	p2 := geometry.NewVector3(exportX2, exportY2, exportZ2)

	var start, end measure.Point
	if exportNoSnap {
		start = measure.Point{Position: p1, SnappedTo: snapping.KindFree}
		end = measure.Point{Position: p2, SnappedTo: snapping.KindFree}
	} else {
		cache := snapping.NewCache(zap.NewNop())
		cache.Rebuild(sc.Surfaces())
		resolver := snapping.NewResolver(cache, snapping.NewCutConfig(),
			cfg.Snapping.Threshold, cfg.Snapping.Epsilon)
		start = measure.PointFromSnap(resolver.FindSnap(p1))
		end = measure.PointFromSnap(resolver.FindSnap(p2))
	}

	store := measure.NewStore(sc, cfg.Export.Layer, zap.NewNop())
	line := store.CreateLine(start, end)
	fmt.Fprintf(os.Stderr, "Distance: %.6f units\n", line.Distance)

	content := store.ExportDXF(true)
	if exportOutput == "" {
		fmt.Print(content)
		return
	}
	if err := os.WriteFile(exportOutput, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", exportOutput, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOutput)
}
