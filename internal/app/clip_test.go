package app

import (
	"math"
	"testing"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// cutAt hides everything above the given height
func cutAt(height float64) scene.ClipPlane {
	return scene.ClipPlane{Normal: geometry.NewVector3(0, -1, 0), Offset: height}
}

func triangleArea(tri [3]geometry.Vector3) float64 {
	t := geometry.Triangle{V1: tri[0], V2: tri[1], V3: tri[2]}
	return t.Area()
}

func TestClipTriangleFullyVisible(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(0, 0, 1)

	tris := clipTriangle(a, b, c, cutAt(1.0))
	if len(tris) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(tris))
	}
	if tris[0] != [3]geometry.Vector3{a, b, c} {
		t.Error("Fully visible triangle must pass through unchanged")
	}
}

func TestClipTriangleFullyHidden(t *testing.T) {
	a := geometry.NewVector3(0, 2, 0)
	b := geometry.NewVector3(1, 2, 0)
	c := geometry.NewVector3(0, 3, 1)

	if tris := clipTriangle(a, b, c, cutAt(1.0)); tris != nil {
		t.Errorf("Expected no triangles, got %d", len(tris))
	}
}

func TestClipTriangleOneVertexVisible(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 2, 0)
	c := geometry.NewVector3(-1, 2, 0)

	tris := clipTriangle(a, b, c, cutAt(1.0))
	if len(tris) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(tris))
	}
	for _, v := range tris[0] {
		if v.Y > 1.0+1e-10 {
			t.Errorf("Vertex above the cut survived: %v", v)
		}
	}
}

func TestClipTriangleTwoVerticesVisible(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(2, 0, 0)
	c := geometry.NewVector3(1, 2, 0)

	tris := clipTriangle(a, b, c, cutAt(1.0))
	if len(tris) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(tris))
	}

	total := 0.0
	for _, tri := range tris {
		for _, v := range tri {
			if v.Y > 1.0+1e-10 {
				t.Errorf("Vertex above the cut survived: %v", v)
			}
		}
		total += triangleArea(tri)
	}

	// full area 2, the clipped tip is similar with ratio 1/2, area 1/2
	if math.Abs(total-1.5) > 1e-10 {
		t.Errorf("Expected kept area 1.5, got %f", total)
	}
}

func TestClipTriangleAreaConservation(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(3, 1, 1)
	c := geometry.NewVector3(1, 2, -1)

	full := triangleArea([3]geometry.Vector3{a, b, c})

	kept := 0.0
	for _, tri := range clipTriangle(a, b, c, cutAt(1.2)) {
		kept += triangleArea(tri)
	}
	hidden := 0.0
	inverse := scene.ClipPlane{Normal: geometry.NewVector3(0, 1, 0), Offset: -1.2}
	for _, tri := range clipTriangle(a, b, c, inverse) {
		hidden += triangleArea(tri)
	}

	if math.Abs(kept+hidden-full) > 1e-9 {
		t.Errorf("Clip halves must cover the triangle: %f + %f != %f", kept, hidden, full)
	}
}
