package section

import (
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/internal/snapping"
	"github.com/quantcla/archiscope/pkg/geometry"
	"github.com/quantcla/archiscope/pkg/scene"
)

// Engine owns the horizontal section cut: the clipping plane on model
// surfaces, the synthesized cap shells that keep the cross-section solid,
// and the snap ceiling shared with the resolver. It has two states,
// disabled and active at a height; every transition strips the previous cut
// entirely before applying the next one.
type Engine struct {
	scene  *scene.Scene
	cut    *snapping.CutConfig
	log    *zap.Logger
	caps   []*scene.Surface
	plane  *scene.ClipPlane
	height float64
	active bool
}

// NewEngine creates a disabled engine. The cut config is the handle the
// snap resolver reads; the engine is its only writer.
func NewEngine(sc *scene.Scene, cut *snapping.CutConfig, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{scene: sc, cut: cut, log: log}
}

// Active returns the current cut height, if the cut is enabled
func (e *Engine) Active() (float64, bool) {
	return e.height, e.active
}

// SetHeight activates the cut at the given height, replacing any previous
// cut. Every model surface gets the clipping plane; every valid model
// surface additionally gets a back-face cap shell so the cut reads as
// solid. Surfaces without cloneable geometry keep the clip but get no cap.
func (e *Engine) SetHeight(height float64) {
	e.strip()

	e.plane = &scene.ClipPlane{
		Normal: geometry.NewVector3(0, -1, 0),
		Offset: height,
	}

	for _, sf := range e.scene.Surfaces() {
		if sf.Role != scene.RoleModel {
			continue
		}
		sf.Clip = e.plane

		shell := backfaceShell(sf, e.plane)
		if shell == nil {
			e.log.Debug("cap skipped, surface has no cloneable geometry",
				zap.String("surface", sf.Name))
			continue
		}
		e.caps = append(e.caps, shell)
		e.scene.Add(shell)
	}

	e.height = height
	e.active = true
	e.cut.SetCeiling(height)
	e.log.Debug("section cut active",
		zap.Float64("height", height),
		zap.Int("caps", len(e.caps)))
}

// Disable removes the cut: caps gone, clips gone, snap ceiling gone
func (e *Engine) Disable() {
	e.strip()
	e.plane = nil
	e.height = 0
	e.active = false
	e.cut.Clear()
	e.log.Debug("section cut disabled")
}

// strip removes all generated caps and clears clipping descriptors,
// returning the scene to its uncut appearance.
func (e *Engine) strip() {
	for _, shell := range e.caps {
		e.scene.Remove(shell)
	}
	e.caps = nil

	for _, sf := range e.scene.Surfaces() {
		if sf.Role == scene.RoleModel {
			sf.Clip = nil
		}
	}
}

// Refresh regenerates the cut against the current scene contents. Call
// after surfaces were added or removed while a cut is active.
func (e *Engine) Refresh() {
	if e.active {
		e.SetHeight(e.height)
	}
}
