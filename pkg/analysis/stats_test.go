package analysis

import (
	"math"
	"testing"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

func buildScene() *scene.Scene {
	sc := scene.NewScene()

	model := scene.NewSurface("floor", scene.RoleModel)
	model.Positions = []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 0, 2),
		geometry.NewVector3(0, 0, 2),
	}
	model.Indices = []int{0, 1, 2, 0, 2, 3}
	sc.Add(model)

	helper := scene.NewSurface("grid", scene.RoleHelper)
	helper.Positions = []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(10, 0, 10),
	}
	helper.Indices = []int{0, 1, 2}
	sc.Add(helper)

	return sc
}

func TestAnalyzeAggregates(t *testing.T) {
	stats := Analyze(buildScene())

	if stats.TriangleCount != 2 {
		t.Errorf("Expected 2 model triangles, got %d", stats.TriangleCount)
	}
	if stats.EdgeCount != 6 {
		t.Errorf("Expected 6 model edges, got %d", stats.EdgeCount)
	}
	if math.Abs(stats.SurfaceArea-4.0) > 1e-10 {
		t.Errorf("Expected surface area 4.0, got %f", stats.SurfaceArea)
	}
	if stats.Dimensions.X != 2 || stats.Dimensions.Z != 2 {
		t.Errorf("Helper surface must not grow the bounds: %v", stats.Dimensions)
	}
	if len(stats.Surfaces) != 2 {
		t.Errorf("Expected both surfaces listed, got %d", len(stats.Surfaces))
	}
}

func TestAnalyzeEdgeLengths(t *testing.T) {
	stats := Analyze(buildScene())

	if math.Abs(stats.MinEdgeLength-2.0) > 1e-10 {
		t.Errorf("Expected min edge 2.0, got %f", stats.MinEdgeLength)
	}
	diagonal := 2 * math.Sqrt2
	if math.Abs(stats.MaxEdgeLength-diagonal) > 1e-10 {
		t.Errorf("Expected max edge %f, got %f", diagonal, stats.MaxEdgeLength)
	}
}

func TestAnalyzeEmptyScene(t *testing.T) {
	stats := Analyze(scene.NewScene())

	if stats.TriangleCount != 0 || stats.EdgeCount != 0 {
		t.Error("Empty scene should produce zero counts")
	}
	if stats.MinEdgeLength != 0 {
		t.Errorf("Expected zero min edge length, got %f", stats.MinEdgeLength)
	}
}

func TestNearestVertex(t *testing.T) {
	sc := buildScene()

	nearest, dist := NearestVertex(sc, geometry.NewVector3(2.1, 0, 2.1))

	want := geometry.NewVector3(2, 0, 2)
	if nearest.Distance(want) > 1e-10 {
		t.Errorf("Expected nearest vertex %v, got %v", want, nearest)
	}
	if math.Abs(dist-math.Sqrt(0.02)) > 1e-10 {
		t.Errorf("Unexpected distance %f", dist)
	}
}
