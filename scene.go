package euclid

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/euclid/text"
)

// Scene is the arena of entities of one construction, together with the
// scheduler that recomputes them.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	opts     sceneOptions
	axes     Axes
	renderer Renderer
	measurer LabelMeasurer
	sched    *Scheduler

	// entities[i] holds the entity with ID i+1.
	entities []*entity
}

// NewScene creates an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scene{
		opts:     o,
		axes:     o.axes,
		renderer: o.renderer,
		measurer: o.measurer,
		sched:    NewScheduler(o.order),
	}
	if s.axes == nil {
		s.axes = MustLinearAxes(DefaultAxesConfig())
	}
	if s.measurer == nil {
		s.measurer = text.NewMeasurer(DefaultLabelSize)
	}
	return s
}

// Axes returns the scene's coordinate mapping.
func (s *Scene) Axes() Axes { return s.axes }

// Scheduler returns the scene's scheduler.
func (s *Scene) Scheduler() *Scheduler { return s.sched }

// Policy returns the per-tick degeneracy policy.
func (s *Scene) Policy() DegeneracyPolicy { return s.opts.policy }

// Len returns the number of entities ever constructed in the scene.
func (s *Scene) Len() int { return len(s.entities) }

// add appends e to the arena and assigns its ID.
func (s *Scene) add(e *entity) ID {
	s.entities = append(s.entities, e)
	e.id = ID(len(s.entities))
	return e.id
}

// register hooks e's recompute into the scheduler and announces it to the
// renderer.
func (s *Scene) register(e *entity, visible bool) {
	id := e.id
	if e.kind != KindValue {
		s.sched.Register(id, func() error { return s.recompute(id) })
	}
	s.renderer.Create(s.snapshot(e))
	if visible {
		e.visible = true
		s.renderer.Show(id)
	}
	Logger().Debug("euclid: entity created",
		slog.Uint64("id", uint64(id)),
		slog.String("kind", e.kind.String()),
		slog.Bool("visible", visible))
}

// lookup returns the entity for id.
func (s *Scene) lookup(id ID) (*entity, error) {
	if id == 0 || int(id) > len(s.entities) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	return s.entities[id-1], nil
}

// expect returns the entity for id, checking its kind.
func (s *Scene) expect(id ID, want EntityKind) (*entity, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if e.kind != want {
		return nil, &TypeMismatchError{ID: id, Want: want, Got: e.kind}
	}
	return e, nil
}

// expectScalar returns the entity for id if it is a value or derived scalar.
func (s *Scene) expectScalar(id ID) (*entity, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !e.kind.isScalar() {
		return nil, &TypeMismatchError{ID: id, Want: KindValue, Got: e.kind}
	}
	return e, nil
}

// expectPoints resolves a list of point IDs.
func (s *Scene) expectPoints(ids []ID) ([]*entity, error) {
	out := make([]*entity, len(ids))
	for i, id := range ids {
		e, err := s.expect(id, KindPoint)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// Kind returns the kind of an entity.
func (s *Scene) Kind(id ID) (EntityKind, error) {
	e, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	return e.kind, nil
}

// Inputs returns the IDs an entity reads from, in order.
func (s *Scene) Inputs(id ID) ([]ID, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]ID(nil), e.inputs...), nil
}

// Snapshot returns a copy of an entity's cached state.
func (s *Scene) Snapshot(id ID) (Snapshot, error) {
	e, err := s.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(e), nil
}

// snapshot copies e's state and stamps it with the renderer's color.
func (s *Scene) snapshot(e *entity) Snapshot {
	snap := e.snapshot()
	snap.Color = s.renderer.Color(e.id)
	return snap
}

// Show makes an entity visible: it is drawn on every following tick.
func (s *Scene) Show(id ID) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !e.visible {
		e.visible = true
		s.renderer.Show(id)
	}
	return nil
}

// Remove deregisters an entity's recompute and stops drawing it. Its last
// cached state stays readable. Dependents keep reading that state.
func (s *Scene) Remove(id ID) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	e.visible = false
	s.sched.Deregister(id)
	return nil
}

// Recompute runs the recompute of a single entity outside of a tick.
func (s *Scene) Recompute(id ID) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	return s.recompute(id)
}

// Tick runs one scheduler pass, then draws every visible entity.
// Recompute failures are returned joined; the draw still happens.
func (s *Scene) Tick() error {
	err := s.sched.Tick()
	tick := s.sched.Ticks()

	fr, framed := s.renderer.(FrameRenderer)
	if framed {
		fr.BeginFrame(tick)
	}
	for _, e := range s.entities {
		if e.visible {
			s.renderer.Draw(s.snapshot(e))
		}
	}
	if framed {
		fr.EndFrame(tick)
	}
	return err
}

// recompute dispatches on the entity's kind. Every kind is handled; values
// have no inputs and never change on their own.
func (s *Scene) recompute(id ID) error {
	e := s.entities[id-1]
	switch e.kind {
	case KindValue:
		return nil
	case KindDerived:
		return s.recomputeDerived(e)
	case KindPoint:
		switch e.pointKind {
		case PointCoords:
			return s.recomputeCoords(e)
		case PointDerivedCenter:
			return s.recomputeCenter(e)
		}
	case KindCircle:
		switch e.circleKind {
		case CircleCenterRadius, CircleCenterPoint, CirclePoints:
			return s.recomputeCircle(e)
		}
	case KindPolygon:
		s.recomputePolygon(e)
		return nil
	}
	panic(fmt.Sprintf("euclid: entity %d has invalid kind %s", id, e.kind))
}

// degenerate applies the degeneracy policy to a recompute failure.
func (s *Scene) degenerate(e *entity, err error) error {
	if s.opts.policy == FailFast {
		return err
	}
	Logger().Warn("euclid: holding last valid state",
		slog.Uint64("id", uint64(e.id)),
		slog.String("kind", e.kind.String()),
		slog.String("error", err.Error()))
	return nil
}
