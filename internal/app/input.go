package app

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/internal/measure"
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

const (
	clickDragThreshold = 2.0 // pixels before a press counts as a drag
	nudgeStep          = 0.1
	heightDragSpeed    = 0.01 // world units per pixel of vertical drag
)

// handleInput processes one frame of user input
func (app *App) handleInput() {
	app.handleKeys()
	app.updateProbe()
	app.handleMouse()
}

// handleKeys processes tool switches, nudges and section shortcuts
func (app *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		app.switchTool(ToolSelect)
	case rl.IsKeyPressed(rl.KeyTwo):
		app.switchTool(ToolLine)
	case rl.IsKeyPressed(rl.KeyThree):
		app.switchTool(ToolPolygon)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}

	// finish or abort the polygon in progress
	if rl.IsKeyPressed(rl.KeyEnter) {
		app.commitPolygon()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.cancelGesture()
	}

	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		if selected := app.store.Selected(); selected != nil {
			app.store.Delete(selected.ID())
		}
	}

	if rl.IsKeyPressed(rl.KeyH) {
		if selected := app.store.Selected(); selected != nil {
			app.store.SetVisible(selected.ID(), !selected.Visible())
		}
	}
	if rl.IsKeyPressed(rl.KeyM) {
		app.View.showMeasurements = !app.View.showMeasurements
		app.store.SetAllVisible(app.View.showMeasurements)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		app.View.showContours = !app.View.showContours
	}

	if rl.IsKeyPressed(rl.KeyE) {
		name := fmt.Sprintf("measurements-%s.dxf", time.Now().Format("20060102-150405"))
		if err := app.ExportMeasurements(name); err != nil {
			app.log.Warn("export failed", zap.Error(err))
		}
	}

	app.handleNudgeKeys()
	app.handleSectionKeys()
}

// handleNudgeKeys moves the selected measurement in the horizontal plane
func (app *App) handleNudgeKeys() {
	selected := app.store.Selected()
	if selected == nil {
		return
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		app.store.Move(selected.ID(), measure.AxisX, -nudgeStep)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		app.store.Move(selected.ID(), measure.AxisX, nudgeStep)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		app.store.Move(selected.ID(), measure.AxisZ, -nudgeStep)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		app.store.Move(selected.ID(), measure.AxisZ, nudgeStep)
	}
}

// handleSectionKeys toggles and adjusts the section cut
func (app *App) handleSectionKeys() {
	if rl.IsKeyPressed(rl.KeyS) {
		if _, active := app.engine.Active(); active {
			app.engine.Disable()
		} else {
			bbox := app.scene.BoundingBox()
			app.engine.SetHeight(bbox.Center().Y)
		}
	}

	if _, active := app.engine.Active(); !active {
		return
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		if session := app.engine.BeginHeightDrag(); session != nil {
			session.End(nudgeStep)
		}
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		if session := app.engine.BeginHeightDrag(); session != nil {
			session.End(-nudgeStep)
		}
	}
}

// updateProbe maps the cursor to a world-space probe and resolves the snap
func (app *App) updateProbe() {
	probe, ok := app.probeUnderCursor()
	if !ok {
		app.Interaction.hasSnap = false
		return
	}
	app.Interaction.snap = app.resolver.FindSnap(probe)
	app.Interaction.hasSnap = true
}

// probeUnderCursor intersects the mouse ray with the model, falling back to
// the ground plane when the cursor is off the geometry.
func (app *App) probeUnderCursor() (geometry.Vector3, bool) {
	ray := app.mouseRay()

	if point, ok := app.intersectModel(ray); ok {
		return point, true
	}
	if point, ok := ray.IntersectPlaneY(0); ok {
		return point, true
	}
	return geometry.Vector3{}, false
}

// mouseRay converts the cursor position to a world-space ray
func (app *App) mouseRay() geometry.Ray {
	mouse := rl.GetMouseRay(rl.GetMousePosition(), app.Camera.camera)
	return geometry.NewRay(
		geometry.NewVector3(float64(mouse.Position.X), float64(mouse.Position.Y), float64(mouse.Position.Z)),
		geometry.NewVector3(float64(mouse.Direction.X), float64(mouse.Direction.Y), float64(mouse.Direction.Z)),
	)
}

// intersectModel returns the nearest ray hit on visible model geometry.
// Triangles hidden by the active clip plane are not hit.
func (app *App) intersectModel(ray geometry.Ray) (geometry.Vector3, bool) {
	best := math.MaxFloat64
	found := false

	for _, sf := range app.scene.Surfaces() {
		if sf.Role != scene.RoleModel || !sf.Valid() {
			continue
		}
		for i := 0; i < sf.TriangleCount(); i++ {
			a, b, c := sf.Triangle(i)
			if sf.Clip != nil && sf.Clip.Clips(a) && sf.Clip.Clips(b) && sf.Clip.Clips(c) {
				continue
			}
			if t, ok := ray.IntersectTriangle(a, b, c); ok && t < best {
				best = t
				found = true
			}
		}
	}

	if !found {
		return geometry.Vector3{}, false
	}
	return ray.At(best), true
}

// handleMouse separates clicks from camera drags and routes clicks by tool
func (app *App) handleMouse() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoomCamera(wheel)
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		app.Interaction.mouseMoved = false
		app.Camera.isPanning = shiftPressed

		if !shiftPressed {
			app.beginDrag()
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > clickDragThreshold || math.Abs(float64(delta.Y)) > clickDragThreshold {
			app.Interaction.mouseMoved = true
		}

		switch {
		case app.Camera.isPanning:
			app.doPan(delta)
		case app.Interaction.moveSession != nil:
			app.updateMoveDrag()
		case app.Interaction.heightSession != nil:
			app.updateHeightDrag()
		case app.Interaction.mouseMoved:
			app.orbitCamera(delta)
		}
	}

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		app.doPan(rl.GetMouseDelta())
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.endDrag()
		if !app.Interaction.mouseMoved && !app.Camera.isPanning {
			app.handleClick()
		}
		app.Camera.isPanning = false
	}
}

// beginDrag starts a measurement move or a cut-height drag when the press
// lands on a draggable target; otherwise the press orbits the camera.
func (app *App) beginDrag() {
	altPressed := rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
	if altPressed {
		if session := app.engine.BeginHeightDrag(); session != nil {
			app.Interaction.heightSession = session
			app.Interaction.heightAnchor = rl.GetMousePosition().Y
		}
		return
	}

	if app.Interaction.tool != ToolSelect {
		return
	}

	hit := app.store.HitTest(app.mouseRay())
	if hit == nil {
		return
	}
	if selected := app.store.Selected(); selected == nil || selected.ID() != hit.ID() {
		return
	}

	session, err := app.store.BeginMove(hit.ID())
	if err != nil {
		return
	}
	app.Interaction.moveSession = session
	app.Interaction.moveAnchor = rl.GetMousePosition()
}

// updateMoveDrag maps the cursor motion onto the ground plane and feeds the
// offset to the move session.
func (app *App) updateMoveDrag() {
	start, ok1 := app.groundPoint(app.Interaction.moveAnchor)
	now, ok2 := app.groundPoint(rl.GetMousePosition())
	if !ok1 || !ok2 {
		return
	}
	app.Interaction.moveSession.Update(now.X-start.X, now.Z-start.Z)
}

// updateHeightDrag adjusts the cut height from vertical cursor motion
func (app *App) updateHeightDrag() {
	deltaPixels := app.Interaction.heightAnchor - rl.GetMousePosition().Y
	app.Interaction.heightSession.Update(float64(deltaPixels) * heightDragSpeed * float64(app.Camera.distance))
}

// endDrag commits any active drag session
func (app *App) endDrag() {
	it := &app.Interaction
	if it.moveSession != nil {
		start, ok1 := app.groundPoint(it.moveAnchor)
		now, ok2 := app.groundPoint(rl.GetMousePosition())
		if ok1 && ok2 {
			it.moveSession.End(now.X-start.X, now.Z-start.Z)
		} else {
			it.moveSession.Cancel()
		}
		it.moveSession = nil
	}
	if it.heightSession != nil {
		deltaPixels := it.heightAnchor - rl.GetMousePosition().Y
		it.heightSession.End(float64(deltaPixels) * heightDragSpeed * float64(app.Camera.distance))
		it.heightSession = nil
	}
}

// groundPoint projects a screen position onto the ground plane
func (app *App) groundPoint(screen rl.Vector2) (geometry.Vector3, bool) {
	mouse := rl.GetMouseRay(screen, app.Camera.camera)
	ray := geometry.NewRay(
		geometry.NewVector3(float64(mouse.Position.X), float64(mouse.Position.Y), float64(mouse.Position.Z)),
		geometry.NewVector3(float64(mouse.Direction.X), float64(mouse.Direction.Y), float64(mouse.Direction.Z)),
	)
	return ray.IntersectPlaneY(0)
}

// handleClick commits a gesture step for the active tool
func (app *App) handleClick() {
	switch app.Interaction.tool {
	case ToolSelect:
		app.selectUnderCursor()
	case ToolLine:
		app.addLinePoint()
	case ToolPolygon:
		app.addPolygonPoint()
	}
}

// selectUnderCursor picks the measurement under the cursor
func (app *App) selectUnderCursor() {
	hit := app.store.HitTest(app.mouseRay())
	if hit == nil {
		app.store.ClearSelection()
		return
	}
	app.store.Select(hit.ID())
}

// addLinePoint commits a line endpoint; the second point creates the entity
func (app *App) addLinePoint() {
	if !app.Interaction.hasSnap {
		return
	}
	point := measure.PointFromSnap(app.Interaction.snap)
	app.Interaction.pending = append(app.Interaction.pending, point)

	if len(app.Interaction.pending) == 2 {
		line := app.store.CreateLine(app.Interaction.pending[0], app.Interaction.pending[1])
		app.Interaction.pending = nil
		app.store.Select(line.ID())
	}
}

// addPolygonPoint appends a loop vertex; Enter closes the loop
func (app *App) addPolygonPoint() {
	if !app.Interaction.hasSnap {
		return
	}
	app.Interaction.pending = append(app.Interaction.pending,
		measure.PointFromSnap(app.Interaction.snap))
}

// commitPolygon closes the pending loop into a polygon measurement
func (app *App) commitPolygon() {
	if app.Interaction.tool != ToolPolygon || len(app.Interaction.pending) == 0 {
		return
	}
	polygon, err := app.store.CreatePolygon(app.Interaction.pending)
	if err != nil {
		app.log.Warn("polygon not committed", zap.Error(err))
		app.Interaction.pending = nil
		return
	}
	app.Interaction.pending = nil
	app.store.Select(polygon.ID())
}

// cancelGesture drops pending points and the selection
func (app *App) cancelGesture() {
	if len(app.Interaction.pending) > 0 {
		app.Interaction.pending = nil
		return
	}
	app.store.ClearSelection()
}

// switchTool changes the active tool, abandoning any unfinished gesture
func (app *App) switchTool(tool Tool) {
	if app.Interaction.tool == tool {
		return
	}
	app.Interaction.tool = tool
	app.Interaction.pending = nil
}
