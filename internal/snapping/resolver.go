package snapping

import (
	"math"

	"github.com/quantcla/archiscope/pkg/geometry"
)

// DefaultThreshold is the default maximum distance at which a probe binds
// to a corner or edge, in world units.
const DefaultThreshold = 0.5

// DefaultEpsilon is the default tolerance added to the height ceiling when
// filtering candidates against an active section cut.
const DefaultEpsilon = 1e-6

// Kind classifies what a snap result bound to
type Kind int

const (
	KindFree Kind = iota
	KindCorner
	KindEdge
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindCorner:
		return "corner"
	case KindEdge:
		return "edge"
	}
	return "free"
}

// Result is a resolved snap target. Kind KindEdge implies Edge is set and
// Point lies on the closed segment; KindCorner implies Point equals a cached
// corner; KindFree implies Point is the raw probe.
type Result struct {
	Point geometry.Vector3
	Kind  Kind
	Edge  *Edge
}

// Resolver maps a world-space probe point to the best snap target. Corner
// hits always win over edge hits: there is no cross-tier distance
// comparison, so a user pointing near a vertex binds to it even when an edge
// projection elsewhere is closer.
type Resolver struct {
	cache     *Cache
	cut       *CutConfig
	threshold float64
	epsilon   float64
}

// NewResolver creates a resolver over the given cache, reading the active
// height ceiling from cut before every search. Non-positive threshold or
// epsilon values fall back to the defaults.
func NewResolver(cache *Cache, cut *CutConfig, threshold, epsilon float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Resolver{
		cache:     cache,
		cut:       cut,
		threshold: threshold,
		epsilon:   epsilon,
	}
}

// Threshold returns the active snap radius
func (r *Resolver) Threshold() float64 {
	return r.threshold
}

// FindSnap resolves the probe point against the cache. With an empty cache
// or nothing within the snap threshold the raw probe is returned unmodified
// as a free point; snap search never fails.
func (r *Resolver) FindSnap(probe geometry.Vector3) Result {
	ceiling, limited := r.cut.Ceiling()

	if corner, ok := r.nearestCorner(probe, ceiling, limited); ok {
		return Result{Point: corner, Kind: KindCorner}
	}
	if point, edge, ok := r.nearestEdgePoint(probe, ceiling, limited); ok {
		return Result{Point: point, Kind: KindEdge, Edge: edge}
	}
	return Result{Point: probe, Kind: KindFree}
}

func (r *Resolver) nearestCorner(probe geometry.Vector3, ceiling float64, limited bool) (geometry.Vector3, bool) {
	best := math.MaxFloat64
	var bestCorner geometry.Vector3
	found := false

	for _, corner := range r.cache.Corners() {
		if limited && corner.Y > ceiling+r.epsilon {
			continue
		}
		dist := probe.Distance(corner)
		if dist <= r.threshold && dist < best {
			best = dist
			bestCorner = corner
			found = true
		}
	}
	return bestCorner, found
}

func (r *Resolver) nearestEdgePoint(probe geometry.Vector3, ceiling float64, limited bool) (geometry.Vector3, *Edge, bool) {
	best := math.MaxFloat64
	var bestPoint geometry.Vector3
	var bestEdge *Edge

	edges := r.cache.Edges()
	for i := range edges {
		edge := &edges[i]
		if limited && edge.Start.Y > ceiling+r.epsilon && edge.End.Y > ceiling+r.epsilon {
			continue
		}

		dir := edge.End.Sub(edge.Start)
		length := dir.Length()
		if length == 0 {
			continue
		}

		// Parametric position of the orthogonal projection, in length units.
		// No extrapolation past the endpoints.
		along := probe.Sub(edge.Start).Dot(dir) / length
		if along < 0 || along > length {
			continue
		}

		point := edge.Start.Add(dir.Mul(along / length))
		if limited && point.Y > ceiling+r.epsilon {
			continue
		}

		dist := probe.Distance(point)
		if dist <= r.threshold && dist < best {
			best = dist
			bestPoint = point
			bestEdge = edge
		}
	}
	return bestPoint, bestEdge, bestEdge != nil
}
