package analysis

import (
	"fmt"
	"math"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// SurfaceStats contains per-surface statistics
type SurfaceStats struct {
	Name      string
	Role      scene.Role
	Triangles int
	Area      float64
}

// SceneStats contains aggregate statistics over a scene's model surfaces
type SceneStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Surfaces      []SurfaceStats
}

// Analyze computes statistics for a scene. Aggregate geometry numbers cover
// model surfaces only; the per-surface list includes every role.
func Analyze(sc *scene.Scene) *SceneStats {
	stats := &SceneStats{
		BoundingBox: sc.BoundingBox(),
	}
	stats.Dimensions = stats.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, sf := range sc.Surfaces() {
		entry := SurfaceStats{
			Name:      sf.Name,
			Role:      sf.Role,
			Triangles: sf.TriangleCount(),
		}

		if sf.Role == scene.RoleModel && sf.Valid() {
			for i := 0; i < sf.TriangleCount(); i++ {
				a, b, c := sf.Triangle(i)
				tri := geometry.Triangle{V1: a, V2: b, V3: c}
				entry.Area += tri.Area()

				for _, length := range tri.EdgeLengths() {
					totalLength += length
					if length < minLength {
						minLength = length
					}
					if length > maxLength {
						maxLength = length
					}
					stats.EdgeCount++
				}
			}
			stats.SurfaceArea += entry.Area
			stats.TriangleCount += entry.Triangles
		}

		stats.Surfaces = append(stats.Surfaces, entry)
	}

	if stats.EdgeCount > 0 {
		stats.MinEdgeLength = minLength
		stats.MaxEdgeLength = maxLength
		stats.AvgEdgeLength = totalLength / float64(stats.EdgeCount)
	}

	return stats
}

// NearestVertex finds the model vertex nearest to a given point
func NearestVertex(sc *scene.Scene, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64

	for _, sf := range sc.Surfaces() {
		if sf.Role != scene.RoleModel {
			continue
		}
		for i := range sf.Positions {
			v := sf.WorldPosition(i)
			if d := point.Distance(v); d < minDistance {
				minDistance = d
				nearest = v
			}
		}
	}

	return nearest, minDistance
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
