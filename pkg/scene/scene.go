package scene

import (
	"fmt"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/stl"
)

// Scene is the snapshot of surfaces shared by the rendering adapter and the
// geometry engine. All mutation happens on the render thread; there is no
// concurrent access.
type Scene struct {
	surfaces []*Surface
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a surface to the scene
func (s *Scene) Add(surface *Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// Remove deletes a surface from the scene, if present
func (s *Scene) Remove(surface *Surface) {
	for i, sf := range s.surfaces {
		if sf == surface {
			s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
			return
		}
	}
}

// Surfaces returns the surface list. The slice is shared; callers iterate,
// they do not mutate.
func (s *Scene) Surfaces() []*Surface {
	return s.surfaces
}

// Clear removes all surfaces
func (s *Scene) Clear() {
	s.surfaces = nil
}

// BoundingBox returns the world-space bounds of all model surfaces
func (s *Scene) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, sf := range s.surfaces {
		if sf.Role != RoleModel {
			continue
		}
		for i := range sf.Positions {
			bbox.Extend(sf.WorldPosition(i))
		}
	}
	return bbox
}

// SurfaceFromModel converts a parsed STL triangle soup into an indexed model
// surface. Vertices are deduplicated by a fixed-precision key so shared
// triangle corners collapse into a single position entry.
func SurfaceFromModel(name string, model *stl.Model) *Surface {
	surface := NewSurface(name, RoleModel)

	index := make(map[string]int)
	addVertex := func(v geometry.Vector3) int {
		key := fmt.Sprintf("%.6f_%.6f_%.6f", v.X, v.Y, v.Z)
		if i, ok := index[key]; ok {
			return i
		}
		i := len(surface.Positions)
		surface.Positions = append(surface.Positions, v)
		index[key] = i
		return i
	}

	for _, tri := range model.Triangles {
		surface.Indices = append(surface.Indices,
			addVertex(tri.V1),
			addVertex(tri.V2),
			addVertex(tri.V3),
		)
	}

	return surface
}
