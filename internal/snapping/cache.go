package snapping

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// Edge is a world-space triangle side usable as a snap target
type Edge struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Cache holds flattened world-space lookup structures for snap search:
// deduplicated corner points and the full triangle-side edge list. Contents
// are consistent only as of the last Rebuild; callers rebuild explicitly
// after structural scene changes, never per frame.
type Cache struct {
	corners []geometry.Vector3
	seen    map[string]struct{}
	edges   []Edge
	log     *zap.Logger
}

// NewCache creates an empty cache
func NewCache(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		seen: make(map[string]struct{}),
		log:  log,
	}
}

// Rebuild repopulates the cache from the given surfaces. Only model-role
// surfaces contribute; helper, overlay and cap content is excluded. Surfaces
// with degenerate triangle data are skipped without failing the rebuild.
// Coincident edges from adjacent triangles are kept: edge search is
// tolerance based, so duplicates cost memory but not correctness.
func (c *Cache) Rebuild(surfaces []*scene.Surface) {
	c.corners = c.corners[:0]
	c.edges = c.edges[:0]
	c.seen = make(map[string]struct{})

	for _, surface := range surfaces {
		if surface.Role != scene.RoleModel {
			continue
		}
		if !surface.Valid() {
			c.log.Debug("skipping surface with degenerate geometry",
				zap.String("surface", surface.Name))
			continue
		}

		for i := 0; i < surface.TriangleCount(); i++ {
			a, b, d := surface.Triangle(i)
			c.addCorner(a)
			c.addCorner(b)
			c.addCorner(d)
			c.edges = append(c.edges,
				Edge{Start: a, End: b},
				Edge{Start: b, End: d},
				Edge{Start: d, End: a},
			)
		}
	}

	c.log.Debug("snap cache rebuilt",
		zap.Int("corners", len(c.corners)),
		zap.Int("edges", len(c.edges)))
}

// addCorner inserts a vertex unless an equal one (at 3-decimal precision)
// was already recorded, merging near-identical corners across surfaces.
// Rounding to integer millis keeps -0.0001 and 0.0001 on the same key.
func (c *Cache) addCorner(p geometry.Vector3) {
	key := fmt.Sprintf("%d_%d_%d",
		int64(math.Round(p.X*1000)),
		int64(math.Round(p.Y*1000)),
		int64(math.Round(p.Z*1000)))
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.corners = append(c.corners, p)
}

// Corners returns the deduplicated corner points
func (c *Cache) Corners() []geometry.Vector3 {
	return c.corners
}

// Edges returns the triangle-side edge list
func (c *Cache) Edges() []Edge {
	return c.edges
}

// CornerCount returns the number of cached corners
func (c *Cache) CornerCount() int {
	return len(c.corners)
}

// EdgeCount returns the number of cached edges
func (c *Cache) EdgeCount() int {
	return len(c.edges)
}
