package section

import (
	"math"
	"testing"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// squareRoomScene builds four unit-height walls enclosing a 1x1 footprint
func squareRoomScene() *scene.Scene {
	sc := scene.NewScene()
	sc.Add(wallSurface("wall-south", 0, 0, 1, 0))
	sc.Add(wallSurface("wall-east", 1, 0, 1, 1))
	sc.Add(wallSurface("wall-north", 1, 1, 0, 1))
	sc.Add(wallSurface("wall-west", 0, 1, 0, 0))
	return sc
}

func TestContoursDisabled(t *testing.T) {
	engine, _ := newTestEngine(squareRoomScene())
	if engine.Contours() != nil {
		t.Error("Disabled cut must yield no contours")
	}
}

func TestContoursClosedLoop(t *testing.T) {
	engine, _ := newTestEngine(squareRoomScene())
	engine.SetHeight(0.5)

	contours := engine.Contours()
	if len(contours) != 1 {
		t.Fatalf("Expected a single closed contour, got %d", len(contours))
	}

	contour := contours[0]
	for _, v := range contour {
		if math.Abs(v.Y-0.5) > 1e-10 {
			t.Errorf("Contour vertex off the cut plane: %v", v)
		}
	}

	if length := ContourLength(contour); math.Abs(length-4.0) > 1e-6 {
		t.Errorf("Expected perimeter 4.0, got %f", length)
	}
}

func TestContourAreas(t *testing.T) {
	engine, _ := newTestEngine(squareRoomScene())
	engine.SetHeight(0.5)

	areas := engine.ContourAreas()
	if len(areas) != 1 {
		t.Fatalf("Expected a single area, got %d", len(areas))
	}
	if math.Abs(areas[0]-1.0) > 1e-6 {
		t.Errorf("Expected cross-section area 1.0, got %f", areas[0])
	}
}

func TestContoursAbovePlane(t *testing.T) {
	engine, _ := newTestEngine(squareRoomScene())
	engine.SetHeight(2.0)

	if contours := engine.Contours(); contours != nil {
		t.Errorf("Cut above all geometry must yield no contours, got %d", len(contours))
	}
}

func TestTrianglePlaneSegment(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(0.5, 1, 0)

	seg, ok := trianglePlaneSegment(a, b, c, 0.5)
	if !ok {
		t.Fatal("Expected an intersection segment")
	}
	if math.Abs(seg.Start.Y-0.5) > 1e-10 || math.Abs(seg.End.Y-0.5) > 1e-10 {
		t.Errorf("Segment endpoints off the plane: %v %v", seg.Start, seg.End)
	}
	if length := seg.Start.Distance(seg.End); math.Abs(length-0.5) > 1e-10 {
		t.Errorf("Expected segment length 0.5, got %f", length)
	}
}

func TestTrianglePlaneSegmentMiss(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(0.5, 0.3, 0)

	if _, ok := trianglePlaneSegment(a, b, c, 0.5); ok {
		t.Error("Triangle below the plane must not intersect")
	}
}

func TestOrderSegmentsMultipleLoops(t *testing.T) {
	square := func(offset float64) []Segment {
		p := func(x, z float64) geometry.Vector3 {
			return geometry.NewVector3(x+offset, 0.5, z)
		}
		return []Segment{
			{Start: p(0, 0), End: p(1, 0)},
			{Start: p(1, 0), End: p(1, 1)},
			{Start: p(1, 1), End: p(0, 1)},
			{Start: p(0, 1), End: p(0, 0)},
		}
	}

	segments := append(square(0), square(5)...)
	contours := orderSegments(segments)

	if len(contours) != 2 {
		t.Fatalf("Expected 2 contours, got %d", len(contours))
	}
	for i, contour := range contours {
		if len(contour) != 4 {
			t.Errorf("Contour %d: expected 4 vertices, got %d", i, len(contour))
		}
	}
}

func TestOrderSegmentsReversedDirections(t *testing.T) {
	p := func(x, z float64) geometry.Vector3 {
		return geometry.NewVector3(x, 0, z)
	}

	// second segment runs against the loop direction
	segments := []Segment{
		{Start: p(0, 0), End: p(1, 0)},
		{Start: p(1, 1), End: p(1, 0)},
		{Start: p(1, 1), End: p(0, 0)},
	}

	contours := orderSegments(segments)
	if len(contours) != 1 {
		t.Fatalf("Expected 1 contour, got %d", len(contours))
	}
	if len(contours[0]) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(contours[0]))
	}
}
