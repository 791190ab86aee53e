package measure

import (
	"github.com/google/uuid"

	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/pkg/geometry"
)

// Point is the persisted record of a snap result used to build a measurement
type Point struct {
	Position  geometry.Vector3
	SnappedTo snapping.Kind
	Edge      *snapping.Edge // set when SnappedTo is KindEdge
}

// PointFromSnap converts a resolver result into a measurement point
func PointFromSnap(result snapping.Result) Point {
	return Point{
		Position:  result.Point,
		SnappedTo: result.Kind,
		Edge:      result.Edge,
	}
}

// Axis selects a horizontal movement direction for measurement nudges.
// Vertical movement of whole measurements is intentionally not offered.
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// Measurement is the closed set of measurement entities: *Line and *Polygon.
// Consumers branch with a type switch covering both variants.
type Measurement interface {
	// ID returns the entity identifier
	ID() uuid.UUID
	// Visible reports whether the entity is rendered and exported
	Visible() bool

	isMeasurement()
}

// Line is a two-point distance measurement
type Line struct {
	id       uuid.UUID
	Start    Point
	End      Point
	Distance float64
	visible  bool
}

func (l *Line) isMeasurement() {}

// ID returns the entity identifier
func (l *Line) ID() uuid.UUID { return l.id }

// Visible reports whether the line is rendered and exported
func (l *Line) Visible() bool { return l.visible }

// recompute refreshes the cached distance from the endpoints
func (l *Line) recompute() {
	l.Distance = l.End.Position.Distance(l.Start.Position)
}

// Midpoint returns the center of the segment, where the label anchors
func (l *Line) Midpoint() geometry.Vector3 {
	return l.Start.Position.Add(l.End.Position).Mul(0.5)
}

// Polygon is a closed multi-point area measurement
type Polygon struct {
	id      uuid.UUID
	Points  []Point
	Area    float64
	visible bool
}

func (p *Polygon) isMeasurement() {}

// ID returns the entity identifier
func (p *Polygon) ID() uuid.UUID { return p.id }

// Visible reports whether the polygon is rendered and exported
func (p *Polygon) Visible() bool { return p.visible }

// recompute refreshes the cached area from the point loop
func (p *Polygon) recompute() {
	p.Area = geometry.PolygonArea(p.positions())
}

// Centroid returns the vertex average, where the area label anchors
func (p *Polygon) Centroid() geometry.Vector3 {
	return geometry.PolygonCentroid(p.positions())
}

func (p *Polygon) positions() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Position
	}
	return out
}
