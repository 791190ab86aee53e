package measure

import (
	"fmt"

	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// labelOffset lifts distance labels above the segment midpoint
const labelOffset = 0.25

// Label is a text anchor the render adapter draws in screen space
type Label struct {
	Text   string
	Anchor geometry.Vector3
}

// Renderable is the visual representation of a measurement, owned by the
// store and rebuilt whenever the entity changes. Segments and markers are
// drawn directly by the render adapter; the polygon fill is an overlay-role
// scene surface so it stays out of the snap cache.
type Renderable struct {
	Segments    []geometry.Vector3 // consecutive pairs form segments
	Markers     []geometry.Vector3
	Fill        *scene.Surface // nil for lines
	Label       Label
	Highlighted bool
}

// buildRenderable constructs the representation for any measurement variant
func buildRenderable(m Measurement) *Renderable {
	switch entity := m.(type) {
	case *Line:
		return buildLineRenderable(entity)
	case *Polygon:
		return buildPolygonRenderable(entity)
	}
	return nil
}

// buildLineRenderable produces the line body, endpoint markers and a
// distance label above the midpoint.
func buildLineRenderable(l *Line) *Renderable {
	mid := l.Midpoint()
	return &Renderable{
		Segments: []geometry.Vector3{l.Start.Position, l.End.Position},
		Markers:  []geometry.Vector3{l.Start.Position, l.End.Position},
		Label: Label{
			Text:   fmt.Sprintf("%.2fm", l.Distance),
			Anchor: geometry.NewVector3(mid.X, mid.Y+labelOffset, mid.Z),
		},
	}
}

// buildPolygonRenderable produces the closed outline, vertex markers, a
// translucent fill surface and a centroid-anchored area label.
func buildPolygonRenderable(p *Polygon) *Renderable {
	r := &Renderable{
		Label: Label{
			Text:   fmt.Sprintf("%.2f m²", p.Area),
			Anchor: p.Centroid(),
		},
	}

	n := len(p.Points)
	for i, pt := range p.Points {
		next := p.Points[(i+1)%n]
		r.Segments = append(r.Segments, pt.Position, next.Position)
		r.Markers = append(r.Markers, pt.Position)
	}

	r.Fill = polygonFill(p)
	return r
}

// polygonFill triangulates the loop as a fan around the centroid. The
// surface carries the overlay role so the snap cache and the section cut
// both ignore it.
func polygonFill(p *Polygon) *scene.Surface {
	if len(p.Points) < 3 {
		return nil
	}

	fill := scene.NewSurface(fmt.Sprintf("measurement-fill-%s", p.ID()), scene.RoleOverlay)
	center := p.Centroid()
	fill.Positions = append(fill.Positions, center)
	for _, pt := range p.Points {
		fill.Positions = append(fill.Positions, pt.Position)
	}

	n := len(p.Points)
	for i := 0; i < n; i++ {
		fill.Indices = append(fill.Indices, 0, 1+i, 1+(i+1)%n)
	}
	return fill
}
