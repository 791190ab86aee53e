package section

import (
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// contourTolerance merges segment endpoints that coincide within this
// distance when chaining segments into contours.
const contourTolerance = 1e-3

// Segment is one piece of the cross-section outline at the cut height
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Contours intersects all model surfaces with the horizontal plane at the
// current cut height and chains the resulting segments into closed loops.
// Returns nil when the cut is disabled or nothing crosses the plane.
func (e *Engine) Contours() [][]geometry.Vector3 {
	if !e.active {
		return nil
	}
	return orderSegments(e.crossSection(e.height))
}

// ContourAreas returns the enclosed area of each closed contour at the
// current cut height, largest first behavior is not guaranteed; order
// follows contour discovery.
func (e *Engine) ContourAreas() []float64 {
	contours := e.Contours()
	areas := make([]float64, 0, len(contours))
	for _, contour := range contours {
		areas = append(areas, geometry.PolygonArea(contour))
	}
	return areas
}

// crossSection collects the intersection segments of every model surface
// triangle with the plane y = height.
func (e *Engine) crossSection(height float64) []Segment {
	var segments []Segment
	for _, sf := range e.scene.Surfaces() {
		if sf.Role != scene.RoleModel || !sf.Valid() {
			continue
		}
		for i := 0; i < sf.TriangleCount(); i++ {
			a, b, c := sf.Triangle(i)
			if seg, ok := trianglePlaneSegment(a, b, c, height); ok {
				segments = append(segments, seg)
			}
		}
	}
	return segments
}

// trianglePlaneSegment intersects one triangle with the horizontal plane.
// A triangle crossing the plane yields exactly one segment; triangles
// entirely on one side, or degenerate touches (single vertex on the
// plane), yield none.
func trianglePlaneSegment(a, b, c geometry.Vector3, height float64) (Segment, bool) {
	corners := [3]geometry.Vector3{a, b, c}
	var points []geometry.Vector3

	for i := 0; i < 3; i++ {
		p := corners[i]
		q := corners[(i+1)%3]
		dp := p.Y - height
		dq := q.Y - height
		if dp == 0 && dq == 0 {
			// edge lies in the plane
			return Segment{Start: p, End: q}, true
		}
		if (dp > 0) == (dq > 0) {
			continue
		}
		t := dp / (dp - dq)
		points = append(points, p.Lerp(q, t))
	}

	if len(points) < 2 {
		return Segment{}, false
	}
	if points[0].Distance(points[1]) < contourTolerance {
		return Segment{}, false
	}
	return Segment{Start: points[0], End: points[1]}, true
}

// orderSegments chains unordered segments into closed contours. Open chains
// (from non-watertight geometry) are kept too once they reach three
// vertices, matching how cross-section fills tolerate imperfect input.
func orderSegments(segments []Segment) [][]geometry.Vector3 {
	if len(segments) == 0 {
		return nil
	}

	equal := func(a, b geometry.Vector3) bool {
		return a.Sub(b).LengthSq() < contourTolerance*contourTolerance
	}

	unused := append([]Segment(nil), segments...)
	var contours [][]geometry.Vector3

	for len(unused) > 0 {
		current := unused[0]
		unused = unused[1:]
		contour := []geometry.Vector3{current.Start, current.End}

		maxIterations := len(segments) * 2
		for i := 0; i < maxIterations && len(unused) > 0; i++ {
			last := contour[len(contour)-1]
			found := false

			for j, seg := range unused {
				if equal(seg.Start, last) {
					contour = append(contour, seg.End)
					unused = append(unused[:j], unused[j+1:]...)
					found = true
					break
				}
				if equal(seg.End, last) {
					contour = append(contour, seg.Start)
					unused = append(unused[:j], unused[j+1:]...)
					found = true
					break
				}
			}

			if len(contour) >= 3 && equal(contour[0], contour[len(contour)-1]) {
				contour = contour[:len(contour)-1]
				break
			}
			if !found {
				break
			}
		}

		if len(contour) >= 3 {
			contours = append(contours, contour)
		}
	}

	return contours
}

// ContourLength returns the total outline length of one contour
func ContourLength(contour []geometry.Vector3) float64 {
	if len(contour) < 2 {
		return 0
	}
	total := 0.0
	for i := range contour {
		total += contour[i].Distance(contour[(i+1)%len(contour)])
	}
	return total
}
