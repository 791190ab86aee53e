package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/quantcla/archiscope/internal/measure"
	"github.com/quantcla/archiscope/internal/section"
	"github.com/quantcla/archiscope/internal/snapping"
)

// Tool selects what a left click does
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolPolygon
)

// String returns the tool name for the HUD
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolLine:
		return "line"
	case ToolPolygon:
		return "polygon"
	}
	return "unknown"
}

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3
	isPanning     bool
	defaultTarget rl.Vector3
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// InteractionState holds tool, gesture and preview state
type InteractionState struct {
	tool Tool

	// live snap preview under the cursor
	snap    snapping.Result
	hasSnap bool

	// points committed so far in the current line/polygon gesture
	pending []measure.Point

	// active drag sessions, nil when idle
	moveSession   *measure.MoveSession
	moveAnchor    rl.Vector2
	heightSession *section.HeightSession
	heightAnchor  float32

	mouseDownPos rl.Vector2
	mouseMoved   bool
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showMeasurements bool
	showMarkers      bool
	showContours     bool
}
