package measure

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quantcla/archiscope/pkg/scene"
)

// Store owns all measurement entities and their renderable representations.
// It is the sole mutator: entities are created on commit gestures, changed
// through explicit calls and destroyed on delete or disposal. Everything
// runs on the render thread; there is no locking.
type Store struct {
	scene       *scene.Scene
	log         *zap.Logger
	order       []uuid.UUID
	entities    map[uuid.UUID]Measurement
	renderables map[uuid.UUID]*Renderable
	selected    uuid.UUID
	layer       string
}

// NewStore creates an empty store writing DXF output to the given layer.
// An empty layer falls back to the standard measurement layer.
func NewStore(sc *scene.Scene, layer string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	if layer == "" {
		layer = defaultLayer
	}
	return &Store{
		scene:       sc,
		log:         log,
		entities:    make(map[uuid.UUID]Measurement),
		renderables: make(map[uuid.UUID]*Renderable),
		layer:       layer,
	}
}

// CreateLine commits a two-point distance measurement
func (s *Store) CreateLine(start, end Point) *Line {
	line := &Line{
		id:      uuid.New(),
		Start:   start,
		End:     end,
		visible: true,
	}
	line.recompute()
	s.register(line)
	s.log.Debug("line measurement created",
		zap.String("id", line.id.String()),
		zap.Float64("distance", line.Distance))
	return line
}

// CreatePolygon commits a closed area measurement. At least 3 points are
// required; a degenerate loop still commits, with area 0.
func (s *Store) CreatePolygon(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(points))
	}
	polygon := &Polygon{
		id:      uuid.New(),
		Points:  append([]Point(nil), points...),
		visible: true,
	}
	polygon.recompute()
	s.register(polygon)
	s.log.Debug("polygon measurement created",
		zap.String("id", polygon.id.String()),
		zap.Int("points", len(polygon.Points)),
		zap.Float64("area", polygon.Area))
	return polygon, nil
}

func (s *Store) register(m Measurement) {
	s.order = append(s.order, m.ID())
	s.entities[m.ID()] = m
	s.attachRenderable(m)
}

// attachRenderable (re)builds the visual representation of an entity and
// swaps it into the scene.
func (s *Store) attachRenderable(m Measurement) {
	s.detachRenderable(m.ID())
	r := buildRenderable(m)
	if r == nil {
		return
	}
	r.Highlighted = m.ID() == s.selected
	s.renderables[m.ID()] = r
	if r.Fill != nil && m.Visible() {
		s.scene.Add(r.Fill)
	}
}

func (s *Store) detachRenderable(id uuid.UUID) {
	if old, ok := s.renderables[id]; ok {
		if old.Fill != nil {
			s.scene.Remove(old.Fill)
		}
		delete(s.renderables, id)
	}
}

// Get returns the entity with the given id, or nil
func (s *Store) Get(id uuid.UUID) Measurement {
	return s.entities[id]
}

// Measurements returns all entities in creation order
func (s *Store) Measurements() []Measurement {
	out := make([]Measurement, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

// Renderable returns the visual representation of an entity, or nil
func (s *Store) Renderable(id uuid.UUID) *Renderable {
	return s.renderables[id]
}

// Select highlights the given entity, reverting the previous highlight.
// Selecting an already selected entity is a no-op; selecting uuid.Nil
// clears the selection.
func (s *Store) Select(id uuid.UUID) {
	if id == s.selected {
		return
	}
	if prev, ok := s.renderables[s.selected]; ok {
		prev.Highlighted = false
	}
	s.selected = uuid.Nil
	if id == uuid.Nil {
		return
	}
	if _, ok := s.entities[id]; !ok {
		return
	}
	s.selected = id
	if r, ok := s.renderables[id]; ok {
		r.Highlighted = true
	}
}

// ClearSelection removes any active highlight
func (s *Store) ClearSelection() {
	s.Select(uuid.Nil)
}

// Selected returns the currently selected entity, or nil
func (s *Store) Selected() Measurement {
	if s.selected == uuid.Nil {
		return nil
	}
	return s.entities[s.selected]
}

// Delete removes an entity and releases its renderable resources, clearing
// the selection if it pointed at the deleted entity.
func (s *Store) Delete(id uuid.UUID) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	if s.selected == id {
		s.selected = uuid.Nil
	}
	s.detachRenderable(id)
	delete(s.entities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Move translates every point of an entity along the given horizontal axis,
// recomputes its measurement value and rebuilds its representation.
func (s *Store) Move(id uuid.UUID, axis Axis, delta float64) {
	m, ok := s.entities[id]
	if !ok {
		return
	}

	switch entity := m.(type) {
	case *Line:
		translatePoint(&entity.Start, axis, delta)
		translatePoint(&entity.End, axis, delta)
		entity.recompute()
	case *Polygon:
		for i := range entity.Points {
			translatePoint(&entity.Points[i], axis, delta)
		}
		entity.recompute()
	}
	s.attachRenderable(m)
}

func translatePoint(p *Point, axis Axis, delta float64) {
	switch axis {
	case AxisX:
		p.Position.X += delta
	case AxisZ:
		p.Position.Z += delta
	}
}

// SetVisible shows or hides a single entity. Hiding also pulls the
// entity's fill surface out of the scene so nothing of it is drawn.
func (s *Store) SetVisible(id uuid.UUID, visible bool) {
	m := s.entities[id]
	if m == nil {
		return
	}
	switch entity := m.(type) {
	case *Line:
		entity.visible = visible
	case *Polygon:
		entity.visible = visible
	}
	s.attachRenderable(m)
}

// SetAllVisible shows or hides every entity
func (s *Store) SetAllVisible(visible bool) {
	for _, id := range s.order {
		s.SetVisible(id, visible)
	}
}

// Dispose deletes all entities and their renderables
func (s *Store) Dispose() {
	for _, id := range append([]uuid.UUID(nil), s.order...) {
		s.Delete(id)
	}
}
