package app

import (
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// clipTriangle clips one triangle against a plane, keeping the visible
// side. A fully visible triangle passes through unchanged; a fully hidden
// one yields nothing; a straddling one is retriangulated along the plane
// into one or two triangles.
func clipTriangle(a, b, c geometry.Vector3, plane scene.ClipPlane) [][3]geometry.Vector3 {
	vertices := [3]geometry.Vector3{a, b, c}

	var inside [3]bool
	insideCount := 0
	for i, v := range vertices {
		if !plane.Clips(v) {
			inside[i] = true
			insideCount++
		}
	}

	switch insideCount {
	case 3:
		return [][3]geometry.Vector3{{a, b, c}}
	case 0:
		return nil
	}

	// signed distance to the plane, positive on the visible side
	dist := func(v geometry.Vector3) float64 {
		return plane.Normal.Dot(v) + plane.Offset
	}
	// intersection of edge (p,q) with the plane
	cross := func(p, q geometry.Vector3) geometry.Vector3 {
		dp, dq := dist(p), dist(q)
		return p.Lerp(q, dp/(dp-dq))
	}

	if insideCount == 1 {
		var idx int
		for i := range inside {
			if inside[i] {
				idx = i
				break
			}
		}
		v0 := vertices[idx]
		v1 := vertices[(idx+1)%3]
		v2 := vertices[(idx+2)%3]
		return [][3]geometry.Vector3{
			{v0, cross(v0, v1), cross(v0, v2)},
		}
	}

	// two inside: the kept quad becomes two triangles
	var idx int
	for i := range inside {
		if !inside[i] {
			idx = i
			break
		}
	}
	v0 := vertices[idx]
	v1 := vertices[(idx+1)%3]
	v2 := vertices[(idx+2)%3]
	n1 := cross(v0, v1)
	n2 := cross(v0, v2)
	return [][3]geometry.Vector3{
		{v1, v2, n1},
		{v2, n2, n1},
	}
}
