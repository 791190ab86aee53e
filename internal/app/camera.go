package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Camera.defaultTarget
}

// setCameraTopView looks straight down, the natural view for floor plans
func (app *App) setCameraTopView() {
	app.Camera.angleX = math.Pi/2 - 0.01
	app.Camera.angleY = 0
	app.Camera.target = app.Camera.defaultTarget
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	cam := &app.Camera
	x := cam.distance * float32(math.Cos(float64(cam.angleX))) * float32(math.Sin(float64(cam.angleY)))
	y := cam.distance * float32(math.Sin(float64(cam.angleX)))
	z := cam.distance * float32(math.Cos(float64(cam.angleX))) * float32(math.Cos(float64(cam.angleY)))

	cam.camera.Position = rl.Vector3{
		X: cam.target.X + x,
		Y: cam.target.Y + y,
		Z: cam.target.Z + z,
	}
	cam.camera.Target = cam.target
}

// orbitCamera rotates the camera around the target
func (app *App) orbitCamera(delta rl.Vector2) {
	cam := &app.Camera
	cam.angleY += delta.X * 0.01
	cam.angleX -= delta.Y * 0.01

	if cam.angleX > 1.5 {
		cam.angleX = 1.5
	}
	if cam.angleX < -1.5 {
		cam.angleX = -1.5
	}
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	cam := &app.Camera
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.target, cam.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := cam.distance * 0.001

	cam.target = rl.Vector3Add(cam.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	cam.target = rl.Vector3Add(cam.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// zoomCamera moves the camera toward or away from the target
func (app *App) zoomCamera(wheel float32) {
	cam := &app.Camera
	cam.distance -= wheel * cam.distance * 0.1
	if cam.distance < 0.1 {
		cam.distance = 0.1
	}
}
