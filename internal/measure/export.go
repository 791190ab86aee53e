package measure

import (
	"fmt"

	"github.com/quantcla/archiscope/pkg/dxf"
)

// defaultLayer is where measurement entities land in exported drawings
const defaultLayer = dxf.DefaultLayer

const (
	distanceTextHeight = 0.15
	areaTextHeight     = 0.2
)

// ExportDXF serializes all visible measurements to DXF text. The drawing
// plane is the horizontal world plane: X maps to DXF X and Z to DXF Y, with
// elevation dropped. Hidden entities are skipped entirely; with
// includeMeasurements false, or nothing visible, the result is an empty
// string.
func (s *Store) ExportDXF(includeMeasurements bool) string {
	if !includeMeasurements {
		return ""
	}

	w := dxf.NewWriter()
	for _, m := range s.Measurements() {
		if !m.Visible() {
			continue
		}
		switch entity := m.(type) {
		case *Line:
			s.exportLine(w, entity)
		case *Polygon:
			s.exportPolygon(w, entity)
		}
	}
	return w.String()
}

func (s *Store) exportLine(w *dxf.Writer, l *Line) {
	w.Line(s.layer,
		l.Start.Position.X, l.Start.Position.Z,
		l.End.Position.X, l.End.Position.Z)

	mid := l.Midpoint()
	w.Text(s.layer, mid.X, mid.Z, distanceTextHeight, fmt.Sprintf("%.2fm", l.Distance))
}

func (s *Store) exportPolygon(w *dxf.Writer, p *Polygon) {
	vertices := make([][2]float64, len(p.Points))
	for i, pt := range p.Points {
		vertices[i] = [2]float64{pt.Position.X, pt.Position.Z}
	}
	w.Polyline(s.layer, vertices, true)

	c := p.Centroid()
	w.Text(s.layer, c.X, c.Z, areaTextHeight, fmt.Sprintf("%.2f m²", p.Area))
}
