package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

const asciiCube = `solid tetra
facet normal 0 0 -1
  outer loop
    vertex 0 0 0
    vertex 1 0 0
    vertex 0 1 0
  endloop
endfacet
facet normal 0 -1 0
  outer loop
    vertex 0 0 0
    vertex 0 0 1
    vertex 1 0 0
  endloop
endfacet
endsolid tetra
`

func TestParseASCII(t *testing.T) {
	model, err := ParseReader(strings.NewReader(asciiCube))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "tetra" {
		t.Errorf("Name failed: expected tetra, got %q", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("TriangleCount failed: expected 2, got %d", model.TriangleCount())
	}

	tri := model.Triangles[0]
	if tri.V2.X != 1 || tri.V3.Y != 1 {
		t.Errorf("Vertex parsing failed: got %v", tri)
	}

	expectedArea := 1.0 // two right triangles with unit legs
	if math.Abs(model.SurfaceArea()-expectedArea) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected %v, got %v", expectedArea, model.SurfaceArea())
	}
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, "binary fixture")
	buf.Write(header)

	binary.Write(&buf, binary.LittleEndian, uint32(1))
	facet := binaryFacet{
		Normal: [3]float32{0, 0, 1},
		V1:     [3]float32{0, 0, 0},
		V2:     [3]float32{2, 0, 0},
		V3:     [3]float32{0, 2, 0},
	}
	binary.Write(&buf, binary.LittleEndian, facet)

	model, err := ParseReader(&buf)
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "binary fixture" {
		t.Errorf("Name failed: got %q", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}
	if math.Abs(model.Triangles[0].Area()-2.0) > 1e-10 {
		t.Errorf("Area failed: expected 2.0, got %v", model.Triangles[0].Area())
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(3)) // claims 3 triangles, provides none

	if _, err := ParseReader(&buf); err == nil {
		t.Error("Expected error for truncated binary STL")
	}
}
