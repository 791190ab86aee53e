package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/stl"
)

func TestSurfaceWorldPosition(t *testing.T) {
	surface := NewSurface("wall", RoleModel)
	surface.Positions = []geometry.Vector3{geometry.NewVector3(1, 2, 3)}
	surface.Indices = []int{0, 0, 0}
	surface.Transform = mgl64.Translate3D(10, 0, -5)

	p := surface.WorldPosition(0)
	expected := geometry.NewVector3(11, 2, -2)
	if p.Distance(expected) > 1e-10 {
		t.Errorf("WorldPosition failed: expected %v, got %v", expected, p)
	}
}

func TestSurfaceValid(t *testing.T) {
	surface := NewSurface("ok", RoleModel)
	surface.Positions = []geometry.Vector3{{}, {}, {}}
	surface.Indices = []int{0, 1, 2}
	if !surface.Valid() {
		t.Error("Expected surface to be valid")
	}

	empty := NewSurface("empty", RoleModel)
	if empty.Valid() {
		t.Error("Expected empty surface to be invalid")
	}

	ragged := NewSurface("ragged", RoleModel)
	ragged.Positions = []geometry.Vector3{{}, {}}
	ragged.Indices = []int{0, 1}
	if ragged.Valid() {
		t.Error("Expected ragged index buffer to be invalid")
	}

	outOfRange := NewSurface("oob", RoleModel)
	outOfRange.Positions = []geometry.Vector3{{}}
	outOfRange.Indices = []int{0, 1, 2}
	if outOfRange.Valid() {
		t.Error("Expected out-of-range indices to be invalid")
	}
}

func TestClipPlane(t *testing.T) {
	// Section cut at height 2: everything above is hidden
	plane := ClipPlane{Normal: geometry.NewVector3(0, -1, 0), Offset: 2}

	if plane.Clips(geometry.NewVector3(0, 1.5, 0)) {
		t.Error("Point below the cut should not be clipped")
	}
	if !plane.Clips(geometry.NewVector3(0, 2.5, 0)) {
		t.Error("Point above the cut should be clipped")
	}
}

func TestSceneAddRemove(t *testing.T) {
	sc := NewScene()
	a := NewSurface("a", RoleModel)
	b := NewSurface("b", RoleOverlay)
	sc.Add(a)
	sc.Add(b)

	if len(sc.Surfaces()) != 2 {
		t.Fatalf("Expected 2 surfaces, got %d", len(sc.Surfaces()))
	}

	sc.Remove(a)
	if len(sc.Surfaces()) != 1 || sc.Surfaces()[0] != b {
		t.Errorf("Remove failed: %v", sc.Surfaces())
	}
}

func TestSurfaceFromModelDedup(t *testing.T) {
	model := stl.NewModel("quad")
	// Two triangles sharing an edge: 4 unique vertices out of 6
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 0, 1),
	))
	model.AddTriangle(geometry.NewTriangle(
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 1),
		geometry.NewVector3(0, 0, 1),
	))

	surface := SurfaceFromModel("quad", model)
	if len(surface.Positions) != 4 {
		t.Errorf("Dedup failed: expected 4 unique positions, got %d", len(surface.Positions))
	}
	if surface.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", surface.TriangleCount())
	}
	if !surface.Valid() {
		t.Error("Expected converted surface to be valid")
	}
}
