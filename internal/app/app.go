package app

import (
	"fmt"
	"math"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/internal/config"
	"github.com/quantcla/archiscope/internal/measure"
	"github.com/quantcla/archiscope/internal/section"
	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/internal/watch"
	"github.com/quantcla/archiscope/pkg/scene"
	"github.com/quantcla/archiscope/pkg/stl"
)

const watchDebounce = 300 * time.Millisecond

// App wires the geometry engine to the raylib window: it owns the scene,
// the snap cache and resolver, the measurement store and the section
// engine, and drives them from the render loop.
type App struct {
	cfg config.Config
	log *zap.Logger

	scene    *scene.Scene
	cache    *snapping.Cache
	cut      *snapping.CutConfig
	resolver *snapping.Resolver
	store    *measure.Store
	engine   *section.Engine

	Camera      CameraState
	Interaction InteractionState
	View        ViewSettings

	frameCallbacks []FrameFunc

	sourceFile string
	watcher    *watch.Watcher
}

// FrameFunc runs once per frame before drawing
type FrameFunc func(dt float32)

// New builds an app around a loaded scene
func New(cfg config.Config, sourceFile string, sc *scene.Scene, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	cache := snapping.NewCache(log)
	cut := snapping.NewCutConfig()
	app := &App{
		cfg:        cfg,
		log:        log,
		scene:      sc,
		cache:      cache,
		cut:        cut,
		resolver:   snapping.NewResolver(cache, cut, cfg.Snapping.Threshold, cfg.Snapping.Epsilon),
		store:      measure.NewStore(sc, cfg.Export.Layer, log),
		engine:     section.NewEngine(sc, cut, log),
		sourceFile: sourceFile,
		View: ViewSettings{
			showMeasurements: true,
			showMarkers:      true,
		},
	}
	app.cache.Rebuild(sc.Surfaces())
	return app
}

// OnFrame registers a callback invoked once per frame before drawing
func (app *App) OnFrame(fn FrameFunc) {
	app.frameCallbacks = append(app.frameCallbacks, fn)
}

// Run opens the window and drives the render loop until the user quits
func (app *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(app.cfg.Viewer.Width), int32(app.cfg.Viewer.Height), "archiscope")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app.setupCamera()

	if app.cfg.Viewer.Watch && app.sourceFile != "" {
		if err := app.setupWatcher(); err != nil {
			app.log.Warn("file watching unavailable", zap.Error(err))
		} else {
			defer app.watcher.Close()
		}
	}

	for {
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		app.drainWatcher()

		dt := rl.GetFrameTime()
		for _, fn := range app.frameCallbacks {
			fn(dt)
		}

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		app.drawMeasurements()
		app.drawSnapPreview()
		rl.EndMode3D()

		app.drawLabels()
		app.drawHUD()

		rl.EndDrawing()
	}

	app.store.Dispose()
	return nil
}

// setupCamera frames the model bounds
func (app *App) setupCamera() {
	bbox := app.scene.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		maxDim = 10
	}

	target := rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	distance := float32(maxDim * 2.0)

	app.Camera = CameraState{
		target:        target,
		distance:      distance,
		angleX:        0.3,
		angleY:        0.3,
		defaultTarget: target,
		defaultDist:   distance,
		defaultAngleX: 0.3,
		defaultAngleY: 0.3,
		camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
			Target:     target,
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45.0,
			Projection: rl.CameraPerspective,
		},
	}
}

// setupWatcher starts reload-on-write for the source model file
func (app *App) setupWatcher() error {
	w, err := watch.New(watchDebounce, app.log)
	if err != nil {
		return err
	}
	if err := w.Add(app.sourceFile); err != nil {
		w.Close()
		return err
	}
	w.Start()
	app.watcher = w
	return nil
}

// drainWatcher applies pending file-change notifications on the render thread
func (app *App) drainWatcher() {
	if app.watcher == nil {
		return
	}
	select {
	case path := <-app.watcher.Changes():
		app.reloadModel(path)
	default:
	}
}

// reloadModel replaces the model surfaces from the changed file and
// refreshes everything derived from them: the snap cache and, when a cut
// is active, the clip planes and caps.
func (app *App) reloadModel(path string) {
	model, err := stl.Parse(path)
	if err != nil {
		app.log.Warn("reload failed, keeping previous model",
			zap.String("path", path), zap.Error(err))
		return
	}

	var old []*scene.Surface
	for _, sf := range app.scene.Surfaces() {
		if sf.Role == scene.RoleModel {
			old = append(old, sf)
		}
	}
	for _, sf := range old {
		app.scene.Remove(sf)
	}
	app.scene.Add(scene.SurfaceFromModel(model.Name, model))

	app.cache.Rebuild(app.scene.Surfaces())
	app.engine.Refresh()
	app.log.Info("model reloaded",
		zap.String("path", path),
		zap.Int("triangles", model.TriangleCount()))
}

// ExportMeasurements writes the DXF serialization of visible measurements
func (app *App) ExportMeasurements(path string) error {
	content := app.store.ExportDXF(true)
	if content == "" {
		return fmt.Errorf("nothing to export")
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	app.log.Info("measurements exported", zap.String("path", path))
	return nil
}
