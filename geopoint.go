package euclid

import "fmt"

// PointFromCoords creates a point at logical (x, y), where x and y are
// scalar entities. The point follows both scalars every tick.
func (s *Scene) PointFromCoords(x, y ID, opts ...PointOption) (ID, error) {
	var o pointOptions
	for _, opt := range opts {
		opt(&o)
	}

	xe, err := s.expectScalar(x)
	if err != nil {
		return 0, err
	}
	ye, err := s.expectScalar(y)
	if err != nil {
		return 0, err
	}

	pos := s.axes.CoordsToPoint(xe.value, ye.value)
	if !pos.isFinite() {
		return 0, fmt.Errorf("%w: position %v from (%v, %v)", ErrNumericDomain, pos, xe.value, ye.value)
	}

	e := &entity{
		kind:      KindPoint,
		pointKind: PointCoords,
		inputs:    []ID{x, y},
		pos:       pos,
	}
	if o.label != "" {
		e.label = newLabel(o.label, s.measurer)
	}
	s.add(e)
	s.placeLabel(e)
	s.register(e, !o.hidden)
	return e.id, nil
}

// Position returns the last recomputed drawing position of a point.
func (s *Scene) Position(id ID) (Point, error) {
	e, err := s.expect(id, KindPoint)
	if err != nil {
		return Point{}, err
	}
	return e.pos, nil
}

// Coords returns the last recomputed position of a point in logical
// coordinates.
func (s *Scene) Coords(id ID) (x, y float64, err error) {
	p, err := s.Position(id)
	if err != nil {
		return 0, 0, err
	}
	x, y = s.axes.PointToCoords(p)
	return x, y, nil
}

func (s *Scene) recomputeCoords(e *entity) error {
	x := s.entities[e.inputs[0]-1].value
	y := s.entities[e.inputs[1]-1].value
	pos := s.axes.CoordsToPoint(x, y)
	if !pos.isFinite() {
		return s.degenerate(e, fmt.Errorf("%w: position %v from (%v, %v)", ErrNumericDomain, pos, x, y))
	}
	e.pos = pos
	s.placeLabel(e)
	return nil
}

// placeLabel moves a point's label next to it and copies the point's
// current color. Points without a label are left alone.
func (s *Scene) placeLabel(e *entity) {
	if e.label == nil {
		return
	}
	e.label.place(e.pos, s.renderer.LabelDirection(), s.renderer.Color(e.id))
}
