package measure

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quantcla/archiscope/pkg/geometry"
)

// MoveSession is a begin/update/end drag moving a measurement in the
// horizontal plane. It snapshots the start positions so every update is an
// absolute offset from the gesture origin: intermediate frames only apply
// position deltas, and an abandoned session restores the snapshot without
// leaving partial state behind.
type MoveSession struct {
	store *Store
	id    uuid.UUID
	start []geometry.Vector3
	done  bool
}

// BeginMove starts a drag session for the given entity
func (s *Store) BeginMove(id uuid.UUID) (*MoveSession, error) {
	m, ok := s.entities[id]
	if !ok {
		return nil, fmt.Errorf("no measurement with id %s", id)
	}

	session := &MoveSession{store: s, id: id}
	switch entity := m.(type) {
	case *Line:
		session.start = []geometry.Vector3{entity.Start.Position, entity.End.Position}
	case *Polygon:
		for _, pt := range entity.Points {
			session.start = append(session.start, pt.Position)
		}
	}
	return session, nil
}

// Update applies the accumulated horizontal offset from the session start
func (ms *MoveSession) Update(dx, dz float64) {
	if ms.done {
		return
	}
	ms.apply(dx, dz)
}

// End commits the drag at the given final offset
func (ms *MoveSession) End(dx, dz float64) {
	if ms.done {
		return
	}
	ms.apply(dx, dz)
	ms.done = true
}

// Cancel restores the start snapshot and abandons the session
func (ms *MoveSession) Cancel() {
	if ms.done {
		return
	}
	ms.apply(0, 0)
	ms.done = true
}

func (ms *MoveSession) apply(dx, dz float64) {
	m, ok := ms.store.entities[ms.id]
	if !ok {
		ms.done = true
		return
	}

	set := func(p *Point, i int) {
		p.Position = geometry.NewVector3(
			ms.start[i].X+dx,
			ms.start[i].Y,
			ms.start[i].Z+dz,
		)
	}

	switch entity := m.(type) {
	case *Line:
		set(&entity.Start, 0)
		set(&entity.End, 1)
		entity.recompute()
	case *Polygon:
		for i := range entity.Points {
			set(&entity.Points[i], i)
		}
		entity.recompute()
	}
	ms.store.attachRenderable(m)
}
