package geometry

import (
	"math"
	"testing"
)

func TestPolygonAreaUnitSquare(t *testing.T) {
	square := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 0, 1),
		NewVector3(0, 0, 1),
	}

	area := PolygonArea(square)
	if math.Abs(area-1.0) > 1e-6 {
		t.Errorf("Unit square area failed: expected 1.0, got %v", area)
	}
}

// rotate applies a rotation around an arbitrary axis (Rodrigues' formula).
func rotate(p Vector3, axis Vector3, angle float64) Vector3 {
	k := axis.Normalize()
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return p.Mul(cos).
		Add(k.Cross(p).Mul(sin)).
		Add(k.Mul(k.Dot(p) * (1 - cos)))
}

func TestPolygonAreaRotationInvariant(t *testing.T) {
	square := []Vector3{
		NewVector3(1, 2, 3),
		NewVector3(3, 2, 3),
		NewVector3(3, 2, 5),
		NewVector3(1, 2, 5),
	}
	before := PolygonArea(square)

	axis := NewVector3(0.3, 1.2, -0.7)
	angle := 1.234
	rotated := make([]Vector3, len(square))
	for i, p := range square {
		rotated[i] = rotate(p, axis, angle)
	}
	after := PolygonArea(rotated)

	if math.Abs(before-after) > 1e-9 {
		t.Errorf("Area not rotation invariant: before %v, after %v", before, after)
	}
}

func TestPolygonAreaTiltedTriangle(t *testing.T) {
	// Right triangle with legs 3 and 4 on a tilted plane
	tri := []Vector3{
		NewVector3(0, 0, 0),
		rotate(NewVector3(3, 0, 0), NewVector3(1, 1, 0), 0.8),
		rotate(NewVector3(0, 0, 4), NewVector3(1, 1, 0), 0.8),
	}

	// Rotation preserves the right angle and the leg lengths
	area := PolygonArea(tri)
	if math.Abs(area-6.0) > 1e-9 {
		t.Errorf("Tilted triangle area failed: expected 6.0, got %v", area)
	}
}

func TestPolygonAreaDegenerate(t *testing.T) {
	if area := PolygonArea(nil); area != 0 {
		t.Errorf("Empty polygon area: expected 0, got %v", area)
	}

	twoPoints := []Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0)}
	if area := PolygonArea(twoPoints); area != 0 {
		t.Errorf("Two-point polygon area: expected 0, got %v", area)
	}

	collinear := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
		NewVector3(3, 3, 3),
	}
	if area := PolygonArea(collinear); area != 0 {
		t.Errorf("Collinear polygon area: expected 0, got %v", area)
	}
}

func TestNewellNormalDirection(t *testing.T) {
	// Counter-clockwise loop in the XZ plane viewed from +Y
	loop := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(0, 0, 1),
		NewVector3(1, 0, 1),
		NewVector3(1, 0, 0),
	}

	n := NewellNormal(loop).Normalize()
	expected := NewVector3(0, 1, 0)
	if n.Distance(expected) > 1e-10 {
		t.Errorf("Newell normal failed: expected %v, got %v", expected, n)
	}
}

func TestPlaneBasisOrthonormal(t *testing.T) {
	normals := []Vector3{
		NewVector3(0, 1, 0),
		NewVector3(1, 0, 0), // nearly parallel to the X reference, forces Y fallback
		NewVector3(0.5, 0.5, 0.7),
	}

	for _, n := range normals {
		u, v := PlaneBasis(n)
		if math.Abs(u.Length()-1) > 1e-10 || math.Abs(v.Length()-1) > 1e-10 {
			t.Errorf("Basis for %v not unit length: |u|=%v |v|=%v", n, u.Length(), v.Length())
		}
		if math.Abs(u.Dot(v)) > 1e-10 {
			t.Errorf("Basis for %v not orthogonal: u·v=%v", n, u.Dot(v))
		}
		nn := n.Normalize()
		if math.Abs(u.Dot(nn)) > 1e-10 || math.Abs(v.Dot(nn)) > 1e-10 {
			t.Errorf("Basis for %v not in plane: u·n=%v v·n=%v", n, u.Dot(nn), v.Dot(nn))
		}
	}
}

func TestPolygonCentroid(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(2, 0, 2),
		NewVector3(0, 0, 2),
	}

	c := PolygonCentroid(points)
	expected := NewVector3(1, 0, 1)
	if c != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, c)
	}
}
