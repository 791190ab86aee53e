package geometry

import "math"

// Ray is a half-line used for picking, defined by an origin and a unit direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// DistanceToSegment returns the smallest distance between the ray and the
// segment [a, b], together with the ray parameter of the closest approach.
// Both the segment parameter and the ray parameter are clamped so that only
// points on the actual segment and in front of the ray origin are considered.
func (r Ray) DistanceToSegment(a, b Vector3) (float64, float64) {
	u := r.Direction
	v := b.Sub(a)
	w := r.Origin.Sub(a)

	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)

	denom := uu*vv - uv*uv

	var s float64
	if denom < 1e-12 {
		// Nearly parallel: take the segment point nearest the ray origin
		// so overlapping parallel segments order by their near ends
		if vv > 1e-12 {
			s = vw / vv
		}
	} else {
		s = (uv*uw - uu*vw) / denom
	}

	s = math.Max(0, math.Min(1, s))

	// Re-derive the ray parameter for the clamped segment point
	closestSeg := a.Add(v.Mul(s))
	t := math.Max(0, closestSeg.Sub(r.Origin).Dot(u))

	return r.At(t).Distance(closestSeg), t
}

// IntersectTriangle performs a Möller-Trumbore ray/triangle intersection.
// It returns the ray parameter of the hit and whether the triangle was hit
// in front of the ray origin. Both triangle orientations are accepted.
func (r Ray) IntersectTriangle(v0, v1, v2 Vector3) (float64, bool) {
	const epsilon = 1e-9

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := r.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < epsilon {
		return 0, false
	}

	invDet := 1.0 / det
	s := r.Origin.Sub(v0)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t < epsilon {
		return 0, false
	}
	return t, true
}

// IntersectPlaneY intersects the ray with the horizontal plane y = height.
// Returns false when the ray is parallel to the plane or points away from it.
func (r Ray) IntersectPlaneY(height float64) (Vector3, bool) {
	if math.Abs(r.Direction.Y) < 1e-12 {
		return Vector3{}, false
	}
	t := (height - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}
