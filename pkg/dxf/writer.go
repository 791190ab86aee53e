// Package dxf emits a small subset of the DXF tag-value grammar: LINE,
// LWPOLYLINE and TEXT entities, written as group-code/value pairs with one
// value per line.
package dxf

import (
	"fmt"
	"strings"
)

// DefaultLayer is the layer measurement entities are written to
const DefaultLayer = "MEASUREMENTS"

// Writer accumulates DXF entity records
type Writer struct {
	sb       strings.Builder
	entities int
}

// NewWriter creates an empty writer
func NewWriter() *Writer {
	return &Writer{}
}

// EntityCount returns the number of entities written so far
func (w *Writer) EntityCount() int {
	return w.entities
}

// String returns the accumulated DXF text wrapped in an ENTITIES section.
// A writer with no entities yields an empty string.
func (w *Writer) String() string {
	if w.entities == 0 {
		return ""
	}
	var out strings.Builder
	tagInto(&out, 0, "SECTION")
	tagInto(&out, 2, "ENTITIES")
	out.WriteString(w.sb.String())
	tagInto(&out, 0, "ENDSEC")
	tagInto(&out, 0, "EOF")
	return out.String()
}

// Line writes a LINE entity in the XY drawing plane (Z fixed at 0)
func (w *Writer) Line(layer string, x1, y1, x2, y2 float64) {
	w.entities++
	w.tag(0, "LINE")
	w.tag(8, layer)
	w.coord(10, x1)
	w.coord(20, y1)
	w.coord(30, 0)
	w.coord(11, x2)
	w.coord(21, y2)
	w.coord(31, 0)
}

// Polyline writes a closed LWPOLYLINE entity from drawing-plane vertices
func (w *Writer) Polyline(layer string, vertices [][2]float64, closed bool) {
	w.entities++
	w.tag(0, "LWPOLYLINE")
	w.tag(8, layer)
	w.tag(90, fmt.Sprintf("%d", len(vertices)))
	if closed {
		w.tag(70, "1")
	} else {
		w.tag(70, "0")
	}
	for _, v := range vertices {
		w.coord(10, v[0])
		w.coord(20, v[1])
	}
}

// Text writes a TEXT entity centered both horizontally and vertically on
// the given point (justification codes 72=1, 73=2).
func (w *Writer) Text(layer string, x, y, height float64, text string) {
	w.entities++
	w.tag(0, "TEXT")
	w.tag(8, layer)
	w.coord(10, x)
	w.coord(20, y)
	w.coord(30, 0)
	w.coord(40, height)
	w.tag(1, text)
	w.tag(72, "1")
	w.tag(73, "2")
	// Aligned text carries its insertion point in the second point group
	w.coord(11, x)
	w.coord(21, y)
	w.coord(31, 0)
}

func (w *Writer) tag(code int, value string) {
	tagInto(&w.sb, code, value)
}

func (w *Writer) coord(code int, value float64) {
	w.tag(code, fmt.Sprintf("%.6f", value))
}

func tagInto(sb *strings.Builder, code int, value string) {
	fmt.Fprintf(sb, "%d\n%s\n", code, value)
}
