package measure

import (
	"math"

	"github.com/quantcla/archiscope/pkg/geometry"
)

// pickRadius is how close a ray must pass to a measurement body to hit it
const pickRadius = 0.15

// HitTest intersects a ray against all visible entities' renderable bodies
// and returns the entity owning the closest hit, or nil. Line bodies are hit
// within a pick radius of the segment; polygons additionally hit on their
// fill triangles.
func (s *Store) HitTest(ray geometry.Ray) Measurement {
	best := math.MaxFloat64
	var hit Measurement

	for _, m := range s.Measurements() {
		if !m.Visible() {
			continue
		}
		r := s.renderables[m.ID()]
		if r == nil {
			continue
		}

		var dist float64
		var ok bool
		switch m.(type) {
		case *Line:
			dist, ok = hitSegments(ray, r.Segments)
		case *Polygon:
			dist, ok = hitSegments(ray, r.Segments)
			if fillDist, fillOK := hitFill(ray, r); fillOK && (!ok || fillDist < dist) {
				dist, ok = fillDist, true
			}
		}
		if ok && dist < best {
			best = dist
			hit = m
		}
	}
	return hit
}

// hitSegments returns the ray parameter of the nearest segment passed
// within the pick radius.
func hitSegments(ray geometry.Ray, segments []geometry.Vector3) (float64, bool) {
	best := math.MaxFloat64
	found := false
	for i := 0; i+1 < len(segments); i += 2 {
		dist, along := ray.DistanceToSegment(segments[i], segments[i+1])
		if dist <= pickRadius && along < best {
			best = along
			found = true
		}
	}
	return best, found
}

// hitFill intersects the ray with the polygon fill triangles
func hitFill(ray geometry.Ray, r *Renderable) (float64, bool) {
	if r.Fill == nil {
		return 0, false
	}
	best := math.MaxFloat64
	found := false
	for i := 0; i < r.Fill.TriangleCount(); i++ {
		a, b, c := r.Fill.Triangle(i)
		if t, ok := ray.IntersectTriangle(a, b, c); ok && t < best {
			best = t
			found = true
		}
	}
	return best, found
}
