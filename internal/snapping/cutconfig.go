package snapping

// CutConfig is the single source of truth for the active section-cut height,
// shared between the section engine (its only writer) and the snap resolver
// (its reader). Passing it by handle keeps the coupling explicit instead of
// routing it through global state.
type CutConfig struct {
	height  float64
	enabled bool
}

// NewCutConfig creates a config with no active cut
func NewCutConfig() *CutConfig {
	return &CutConfig{}
}

// SetCeiling activates the height ceiling
func (c *CutConfig) SetCeiling(height float64) {
	c.height = height
	c.enabled = true
}

// Clear disables the height ceiling
func (c *CutConfig) Clear() {
	c.height = 0
	c.enabled = false
}

// Ceiling returns the active ceiling height, if any
func (c *CutConfig) Ceiling() (float64, bool) {
	return c.height, c.enabled
}
