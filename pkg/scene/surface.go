package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quantcla/archiscope/pkg/geometry"
)

// Role classifies what a surface contributes to the scene. Only RoleModel
// surfaces take part in snapping, section cuts and cap generation; the other
// roles mark auxiliary content that the geometry engine must ignore.
type Role int

const (
	RoleModel Role = iota
	RoleHelper
	RoleOverlay
	RoleCap
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleModel:
		return "model"
	case RoleHelper:
		return "helper"
	case RoleOverlay:
		return "overlay"
	case RoleCap:
		return "cap"
	}
	return "unknown"
}

// ClipPlane describes a clipping half-space applied to a surface's material.
// A point p is hidden when Normal·p + Offset < 0. A horizontal section cut at
// height h uses Normal=(0,-1,0), Offset=h, hiding everything with y > h.
type ClipPlane struct {
	Normal geometry.Vector3
	Offset float64
}

// Clips reports whether the plane hides the given world-space point
func (c ClipPlane) Clips(p geometry.Vector3) bool {
	return c.Normal.Dot(p)+c.Offset < 0
}

// Surface is a renderable piece of scene geometry: a triangle list in local
// space together with a world transform. Positions and Indices describe a
// triangle soup (len(Indices) is a multiple of 3).
type Surface struct {
	Name      string
	Role      Role
	Transform mgl64.Mat4
	Positions []geometry.Vector3
	Indices   []int

	// Clip, when set, hides the part of the surface behind the plane.
	Clip *ClipPlane

	// BackFaceOnly marks cap shells that render only their back faces.
	BackFaceOnly bool
}

// NewSurface creates a surface with an identity transform
func NewSurface(name string, role Role) *Surface {
	return &Surface{
		Name:      name,
		Role:      role,
		Transform: mgl64.Ident4(),
	}
}

// TriangleCount returns the number of triangles in the surface
func (s *Surface) TriangleCount() int {
	return len(s.Indices) / 3
}

// Valid reports whether the surface carries a well-formed triangle list.
// Surfaces with missing positions, a ragged index buffer or out-of-range
// indices are skipped by consumers rather than treated as fatal.
func (s *Surface) Valid() bool {
	if len(s.Positions) == 0 || len(s.Indices) == 0 || len(s.Indices)%3 != 0 {
		return false
	}
	for _, idx := range s.Indices {
		if idx < 0 || idx >= len(s.Positions) {
			return false
		}
	}
	return true
}

// WorldPosition returns vertex i transformed to world space
func (s *Surface) WorldPosition(i int) geometry.Vector3 {
	return transformPoint(s.Transform, s.Positions[i])
}

// Triangle returns triangle i's corners in world space
func (s *Surface) Triangle(i int) (geometry.Vector3, geometry.Vector3, geometry.Vector3) {
	a := s.WorldPosition(s.Indices[i*3])
	b := s.WorldPosition(s.Indices[i*3+1])
	c := s.WorldPosition(s.Indices[i*3+2])
	return a, b, c
}

// BoundingBox returns the world-space bounds of the surface
func (s *Surface) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := range s.Positions {
		bbox.Extend(s.WorldPosition(i))
	}
	return bbox
}

func transformPoint(m mgl64.Mat4, p geometry.Vector3) geometry.Vector3 {
	out := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return geometry.NewVector3(out.X(), out.Y(), out.Z())
}
