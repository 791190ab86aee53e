package geometry

import "math"

// degenerateNormalSq is the squared length below which a Newell normal is
// treated as numerical noise (collinear or duplicate points).
const degenerateNormalSq = 1e-18

// NewellNormal computes the best-fit plane normal of a vertex loop using
// Newell's method. The result is not normalized; its length is proportional
// to twice the polygon area.
func NewellNormal(points []Vector3) Vector3 {
	var n Vector3
	for i, current := range points {
		next := points[(i+1)%len(points)]
		n.X += (current.Y - next.Y) * (current.Z + next.Z)
		n.Y += (current.Z - next.Z) * (current.X + next.X)
		n.Z += (current.X - next.X) * (current.Y + next.Y)
	}
	return n
}

// PlaneBasis builds an orthonormal 2D basis (u, v) spanning the plane with
// the given normal. The X axis is used as reference unless it is nearly
// parallel to the normal, in which case Y is used instead.
func PlaneBasis(normal Vector3) (Vector3, Vector3) {
	n := normal.Normalize()
	reference := NewVector3(1, 0, 0)
	if math.Abs(n.Dot(reference)) > 0.9 {
		reference = NewVector3(0, 1, 0)
	}
	u := n.Cross(reference).Normalize()
	v := n.Cross(u).Normalize()
	return u, v
}

// PolygonArea returns the enclosed area of a closed vertex loop lying on an
// arbitrary plane. The loop does not need to be axis aligned: the points are
// projected onto their best-fit plane and the shoelace formula is applied in
// 2D. Fewer than 3 points, or a degenerate (collinear) loop, yields 0.
func PolygonArea(points []Vector3) float64 {
	if len(points) < 3 {
		return 0
	}

	normal := NewellNormal(points)
	if normal.LengthSq() < degenerateNormalSq {
		return 0
	}

	u, v := PlaneBasis(normal)

	us := make([]float64, len(points))
	vs := make([]float64, len(points))
	for i, p := range points {
		us[i] = p.Dot(u)
		vs[i] = p.Dot(v)
	}

	sum := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		sum += us[i]*vs[j] - us[j]*vs[i]
	}
	return math.Abs(sum) / 2.0
}

// PolygonCentroid returns the vertex average of a loop, used as the anchor
// for area labels. Returns the zero vector for an empty loop.
func PolygonCentroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var c Vector3
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1.0 / float64(len(points)))
}
