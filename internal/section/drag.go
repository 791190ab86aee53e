package section

// HeightSession is a begin/update/end drag of the cut height. Intermediate
// updates only move the shared clipping plane and the snap ceiling, which
// is cheap; cap regeneration is deferred to the commit. Cancel restores the
// height the drag started from.
type HeightSession struct {
	engine *Engine
	start  float64
	done   bool
}

// BeginHeightDrag starts adjusting the active cut. Returns nil when the
// cut is disabled; there is no height to drag then.
func (e *Engine) BeginHeightDrag() *HeightSession {
	if !e.active {
		return nil
	}
	return &HeightSession{engine: e, start: e.height}
}

// Update moves the cut plane to start+delta without rebuilding caps
func (hs *HeightSession) Update(delta float64) {
	if hs.done {
		return
	}
	hs.engine.slide(hs.start + delta)
}

// End commits the final height with a full cut regeneration
func (hs *HeightSession) End(delta float64) {
	if hs.done {
		return
	}
	hs.done = true
	hs.engine.SetHeight(hs.start + delta)
}

// Cancel restores the height the session started from
func (hs *HeightSession) Cancel() {
	if hs.done {
		return
	}
	hs.done = true
	hs.engine.slide(hs.start)
}

// slide moves the active plane and ceiling in place. The cap shells share
// the plane, so no geometry changes are needed.
func (e *Engine) slide(height float64) {
	if !e.active || e.plane == nil {
		return
	}
	e.plane.Offset = height
	e.height = height
	e.cut.SetCeiling(height)
}
