package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

var (
	modelTint       = rl.NewColor(110, 132, 220, 255)
	capTint         = rl.NewColor(200, 120, 90, 255)
	fillTint        = rl.NewColor(80, 160, 255, 90)
	measureColor    = rl.NewColor(255, 200, 60, 255)
	highlightColor  = rl.NewColor(255, 90, 90, 255)
	contourColor    = rl.NewColor(90, 255, 140, 255)
	cornerSnapColor = rl.NewColor(80, 255, 120, 255)
	edgeSnapColor   = rl.NewColor(255, 220, 80, 255)
	freeSnapColor   = rl.NewColor(160, 160, 160, 255)
)

var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// drawScene renders every surface, honoring clip planes and cap shells
func (app *App) drawScene() {
	for _, sf := range app.scene.Surfaces() {
		if !sf.Valid() {
			continue
		}
		switch sf.Role {
		case scene.RoleModel:
			app.drawSurface(sf, modelTint, false)
		case scene.RoleCap:
			app.drawSurface(sf, capTint, true)
		case scene.RoleOverlay:
			app.drawOverlay(sf)
		}
	}

	if app.View.showContours {
		app.drawContours()
	}
}

// drawSurface draws a clipped, lit triangle list. Back-face shells draw
// only the triangles facing away from the camera, with reversed winding so
// they stay visible.
func (app *App) drawSurface(sf *scene.Surface, tint rl.Color, backFacesOnly bool) {
	camPos := geometry.NewVector3(
		float64(app.Camera.camera.Position.X),
		float64(app.Camera.camera.Position.Y),
		float64(app.Camera.camera.Position.Z),
	)

	for i := 0; i < sf.TriangleCount(); i++ {
		a, b, c := sf.Triangle(i)

		tris := [][3]geometry.Vector3{{a, b, c}}
		if sf.Clip != nil {
			tris = clipTriangle(a, b, c, *sf.Clip)
		}

		for _, tri := range tris {
			normal := triangleNormal(tri[0], tri[1], tri[2])

			if backFacesOnly {
				view := camPos.Sub(tri[0]).Normalize()
				if normal.Dot(view) >= 0 {
					continue
				}
				tri[1], tri[2] = tri[2], tri[1]
				normal = normal.Mul(-1)
			}

			intensity := math.Max(0.3, -normal.Dot(lightDir))
			color := rl.NewColor(
				uint8(float64(tint.R)*intensity),
				uint8(float64(tint.G)*intensity),
				uint8(float64(tint.B)*intensity),
				tint.A,
			)
			rl.DrawTriangle3D(toRl(tri[0]), toRl(tri[1]), toRl(tri[2]), color)
		}
	}
}

// drawOverlay draws measurement fill surfaces double-sided and untinted
func (app *App) drawOverlay(sf *scene.Surface) {
	if !app.View.showMeasurements {
		return
	}
	for i := 0; i < sf.TriangleCount(); i++ {
		a, b, c := sf.Triangle(i)
		rl.DrawTriangle3D(toRl(a), toRl(b), toRl(c), fillTint)
		rl.DrawTriangle3D(toRl(a), toRl(c), toRl(b), fillTint)
	}
}

// drawMeasurements draws bodies and markers of all visible measurements
func (app *App) drawMeasurements() {
	if !app.View.showMeasurements {
		return
	}

	thickness := app.Camera.distance * 0.0008
	for _, m := range app.store.Measurements() {
		if !m.Visible() {
			continue
		}
		r := app.store.Renderable(m.ID())
		if r == nil {
			continue
		}

		color := measureColor
		if r.Highlighted {
			color = highlightColor
		}

		for i := 0; i+1 < len(r.Segments); i += 2 {
			rl.DrawCylinderEx(toRl(r.Segments[i]), toRl(r.Segments[i+1]),
				thickness, thickness, 8, color)
		}
		if app.View.showMarkers {
			for _, marker := range r.Markers {
				rl.DrawSphere(toRl(marker), thickness*3, color)
			}
		}
	}

	// pending gesture points
	for _, pt := range app.Interaction.pending {
		rl.DrawSphere(toRl(pt.Position), thickness*3, highlightColor)
	}
}

// drawSnapPreview marks the resolved snap point under the cursor
func (app *App) drawSnapPreview() {
	if !app.Interaction.hasSnap {
		return
	}

	snap := app.Interaction.snap
	radius := app.Camera.distance * 0.003

	var color rl.Color
	switch snap.Kind {
	case snapping.KindCorner:
		color = cornerSnapColor
	case snapping.KindEdge:
		color = edgeSnapColor
	default:
		color = freeSnapColor
	}

	rl.DrawSphere(toRl(snap.Point), radius, color)
	if snap.Kind == snapping.KindEdge && snap.Edge != nil {
		rl.DrawLine3D(toRl(snap.Edge.Start), toRl(snap.Edge.End), color)
	}
}

// drawContours outlines the active cut cross-section
func (app *App) drawContours() {
	thickness := app.Camera.distance * 0.001
	for _, contour := range app.engine.Contours() {
		n := len(contour)
		for i := 0; i < n; i++ {
			rl.DrawCylinderEx(toRl(contour[i]), toRl(contour[(i+1)%n]),
				thickness, thickness, 6, contourColor)
		}
	}
}

// drawLabels draws measurement value labels in screen space
func (app *App) drawLabels() {
	if !app.View.showMeasurements {
		return
	}
	for _, m := range app.store.Measurements() {
		if !m.Visible() {
			continue
		}
		r := app.store.Renderable(m.ID())
		if r == nil || r.Label.Text == "" {
			continue
		}
		screen := rl.GetWorldToScreen(toRl(r.Label.Anchor), app.Camera.camera)
		width := rl.MeasureText(r.Label.Text, 18)
		rl.DrawText(r.Label.Text, int32(screen.X)-width/2, int32(screen.Y)-9, 18, rl.White)
	}
}

// drawHUD shows the active tool and section state
func (app *App) drawHUD() {
	status := fmt.Sprintf("tool: %s", app.Interaction.tool)
	if len(app.Interaction.pending) > 0 {
		status += fmt.Sprintf("  points: %d", len(app.Interaction.pending))
	}
	if height, active := app.engine.Active(); active {
		status += fmt.Sprintf("  cut: %.2f", height)
	}
	rl.DrawText(status, 10, 10, 20, rl.LightGray)
	rl.DrawText("1 select  2 line  3 polygon  S cut  E export", 10, 36, 14, rl.Gray)
}

// triangleNormal returns the unit normal of a triangle
func triangleNormal(a, b, c geometry.Vector3) geometry.Vector3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func toRl(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
