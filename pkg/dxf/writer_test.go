package dxf

import (
	"strings"
	"testing"
)

func TestWriterEmpty(t *testing.T) {
	w := NewWriter()
	if out := w.String(); out != "" {
		t.Errorf("Empty writer should yield empty string, got %q", out)
	}
}

func TestWriterLine(t *testing.T) {
	w := NewWriter()
	w.Line(DefaultLayer, 0, 0, 3, 4)

	out := w.String()
	if !strings.Contains(out, "0\nLINE\n") {
		t.Error("Expected LINE entity")
	}
	if !strings.Contains(out, "8\nMEASUREMENTS\n") {
		t.Error("Expected MEASUREMENTS layer tag")
	}
	if !strings.Contains(out, "10\n0.000000\n") || !strings.Contains(out, "11\n3.000000\n") {
		t.Error("Expected 6-decimal coordinates for group codes 10/11")
	}
	if !strings.Contains(out, "21\n4.000000\n") {
		t.Error("Expected end point Y in group code 21")
	}
	if !strings.HasPrefix(out, "0\nSECTION\n2\nENTITIES\n") {
		t.Errorf("Expected ENTITIES section header, got prefix %q", out[:20])
	}
	if !strings.HasSuffix(out, "0\nENDSEC\n0\nEOF\n") {
		t.Error("Expected ENDSEC/EOF trailer")
	}
}

func TestWriterText(t *testing.T) {
	w := NewWriter()
	w.Text(DefaultLayer, 1.5, 2, 0.15, "5.00m")

	out := w.String()
	if !strings.Contains(out, "1\n5.00m\n") {
		t.Error("Expected text payload in group code 1")
	}
	if !strings.Contains(out, "40\n0.150000\n") {
		t.Error("Expected text height in group code 40")
	}
	if !strings.Contains(out, "72\n1\n") || !strings.Contains(out, "73\n2\n") {
		t.Error("Expected centered justification codes 72=1 and 73=2")
	}
	if !strings.Contains(out, "11\n1.500000\n") {
		t.Error("Expected alignment point in group code 11")
	}
}

func TestWriterPolyline(t *testing.T) {
	w := NewWriter()
	w.Polyline(DefaultLayer, [][2]float64{{0, 0}, {1, 0}, {1, 1}}, true)

	out := w.String()
	if !strings.Contains(out, "0\nLWPOLYLINE\n") {
		t.Error("Expected LWPOLYLINE entity")
	}
	if !strings.Contains(out, "90\n3\n") {
		t.Error("Expected vertex count 3 in group code 90")
	}
	if !strings.Contains(out, "70\n1\n") {
		t.Error("Expected closed flag 70=1")
	}
	if strings.Count(out, "10\n") != 3 {
		t.Errorf("Expected 3 vertex X tags, got %d", strings.Count(out, "10\n"))
	}
}
