package euclid

// PolygonFromPoints creates a polygon whose vertices are the positions of
// points, in the given order. Simplicity and convexity are not checked.
func (s *Scene) PolygonFromPoints(points ...ID) (ID, error) {
	if len(points) == 0 {
		return 0, ErrEmptyPolygon
	}
	pts, err := s.expectPoints(points)
	if err != nil {
		return 0, err
	}

	e := &entity{
		kind:     KindPolygon,
		inputs:   append([]ID(nil), points...),
		vertices: make([]Point, len(pts)),
	}
	for i, p := range pts {
		e.vertices[i] = p.pos
	}
	s.add(e)
	s.register(e, true)
	return e.id, nil
}

// Vertices returns a copy of a polygon's cached vertex list.
func (s *Scene) Vertices(id ID) ([]Point, error) {
	e, err := s.expect(id, KindPolygon)
	if err != nil {
		return nil, err
	}
	return append([]Point(nil), e.vertices...), nil
}

func (s *Scene) recomputePolygon(e *entity) {
	for i, id := range e.inputs {
		e.vertices[i] = s.entities[id-1].pos
	}
}
