package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/internal/config"
	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/pkg/analysis"
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
	"github.com/quantcla/archiscope/pkg/stl"
)

var (
	snapX, snapY, snapZ float64
	snapCeiling         float64
	snapHasCeiling      bool
)

var snapCmd = &cobra.Command{
	Use:   "snap [file]",
	Short: "Resolve a probe point against a model's snap targets",
	Long: `Resolve a world-space probe point the way the viewer does: against the
model's corners first, then its edges, falling back to the free point.
With --ceiling, candidates above that height are excluded, matching an
active section cut.`,
	Args: cobra.ExactArgs(1),
	Run:  runSnap,
}

func init() {
	rootCmd.AddCommand(snapCmd)

	snapCmd.Flags().Float64VarP(&snapX, "x", "x", 0.0, "X coordinate of the probe")
	snapCmd.Flags().Float64VarP(&snapY, "y", "y", 0.0, "Y coordinate of the probe")
	snapCmd.Flags().Float64VarP(&snapZ, "z", "z", 0.0, "Z coordinate of the probe")
	snapCmd.Flags().Float64Var(&snapCeiling, "ceiling", 0.0, "Exclude candidates above this height")
}

func runSnap(cmd *cobra.Command, args []string) {
	filename := args[0]
	snapHasCeiling = cmd.Flags().Changed("ceiling")

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

	cache := snapping.NewCache(zap.NewNop())
	cache.Rebuild(sc.Surfaces())

	cut := snapping.NewCutConfig()
	if snapHasCeiling {
		cut.SetCeiling(snapCeiling)
	}
	resolver := snapping.NewResolver(cache, cut, cfg.Snapping.Threshold, cfg.Snapping.Epsilon)

	probe := geometry.NewVector3(snapX, snapY, snapZ)
	result := resolver.FindSnap(probe)

	fmt.Println("Snap Resolution")
	fmt.Println("===============")
	fmt.Printf("Probe: %s\n", analysis.FormatVector(probe))
	fmt.Printf("Cached corners: %d, edges: %d\n", cache.CornerCount(), cache.EdgeCount())
	if snapHasCeiling {
		fmt.Printf("Height ceiling: %.6f\n", snapCeiling)
	}

	fmt.Printf("\nResult: %s\n", result.Kind)
	fmt.Printf("Point: %s\n", analysis.FormatVector(result.Point))
	if result.Kind != snapping.KindFree {
		fmt.Printf("Distance: %.6f units\n", probe.Distance(result.Point))
	}
	if result.Edge != nil {
		fmt.Printf("Edge: %s -> %s\n",
			analysis.FormatVector(result.Edge.Start),
			analysis.FormatVector(result.Edge.End))
	}

	nearest, dist := analysis.NearestVertex(sc, probe)
	fmt.Printf("\nNearest vertex: %s (distance: %.6f)\n", analysis.FormatVector(nearest), dist)
}
