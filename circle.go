package euclid

import (
	"fmt"
	"math"
)

// RadiusScale converts a circle's logical radius into its drawing radius.
// The value is kept as observed; it equals the drawing length of one
// logical unit under DefaultAxesConfig, but it is not derived from the
// scene's axes.
const RadiusScale = 0.6

// CircleCenterRadius creates a circle around center with the value of the
// radius scalar as its logical radius.
func (s *Scene) CircleCenterRadius(center, radius ID) (ID, error) {
	return s.newCircle(CircleCenterRadius, center, radius, nil)
}

// CircleCenterPoint creates a circle around center passing through point.
// The radius is an implicit derived scalar holding the logical distance
// between the two points; it is recomputed every tick.
func (s *Scene) CircleCenterPoint(center, point ID) (ID, error) {
	return s.circleCenterPoint(CircleCenterPoint, center, point, []ID{center, point})
}

// CircleThroughPoints creates the circle through p1, p2 and p3. Its center
// is a hidden synthetic point that tracks the circumcenter of the three
// points. Collinear points return a *DegenerateConstructionError and
// nothing is created.
func (s *Scene) CircleThroughPoints(p1, p2, p3 ID) (ID, error) {
	pts, err := s.expectPoints([]ID{p1, p2, p3})
	if err != nil {
		return 0, err
	}
	c, err := Circumcenter(s.logical(pts[0]), s.logical(pts[1]), s.logical(pts[2]))
	if err != nil {
		return 0, err
	}
	// The radius is checked before the center is registered so a failure
	// leaves no entity behind.
	lp1 := s.logical(pts[0])
	if r, _ := distanceFunc(c.X, c.Y, lp1.X, lp1.Y); !isFinite(r) {
		return 0, fmt.Errorf("%w: radius of circle through %v, %v, %v", ErrNumericDomain, p1, p2, p3)
	}

	center := &entity{
		kind:      KindPoint,
		pointKind: PointDerivedCenter,
		inputs:    []ID{p1, p2, p3},
		pos:       s.axes.CoordsToPoint(c.X, c.Y),
	}
	s.add(center)
	s.register(center, false)

	return s.circleCenterPoint(CirclePoints, center.id, p1, []ID{p1, p2, p3})
}

// Circle returns the cached state of a circle.
func (s *Scene) Circle(id ID) (CircleState, error) {
	e, err := s.expect(id, KindCircle)
	if err != nil {
		return CircleState{}, err
	}
	return e.circleState(), nil
}

// distanceFunc is the Euclidean distance between two points given as
// x1, y1, x2, y2.
func distanceFunc(in ...float64) (float64, error) {
	if len(in) != 4 {
		return 0, fmt.Errorf("distance needs 4 coordinates, got %d", len(in))
	}
	return math.Hypot(in[0]-in[2], in[1]-in[3]), nil
}

func (s *Scene) circleCenterPoint(kind CircleKind, center, point ID, defining []ID) (ID, error) {
	if _, err := s.expectPoints([]ID{center, point}); err != nil {
		return 0, err
	}
	radius, err := s.Derive(distanceFunc, center, point)
	if err != nil {
		return 0, err
	}
	return s.newCircle(kind, center, radius, defining)
}

func (s *Scene) newCircle(kind CircleKind, center, radius ID, defining []ID) (ID, error) {
	ce, err := s.expect(center, KindPoint)
	if err != nil {
		return 0, err
	}
	re, err := s.expectScalar(radius)
	if err != nil {
		return 0, err
	}
	if err := checkRadius(re.value); err != nil {
		return 0, err
	}

	e := &entity{
		kind:       KindCircle,
		circleKind: kind,
		inputs:     []ID{center, radius},
		defining:   defining,
		center:     ce.pos,
		logical:    re.value,
	}
	s.add(e)
	s.register(e, true)
	return e.id, nil
}

func (s *Scene) recomputeCircle(e *entity) error {
	r := s.entities[e.inputs[1]-1].value
	if err := checkRadius(r); err != nil {
		return s.degenerate(e, err)
	}
	e.center = s.entities[e.inputs[0]-1].pos
	e.logical = r
	return nil
}

func checkRadius(r float64) error {
	switch {
	case !isFinite(r):
		return fmt.Errorf("%w: radius %v", ErrNumericDomain, r)
	case r < 0:
		return fmt.Errorf("%w: %g", ErrNegativeRadius, r)
	}
	return nil
}

func (s *Scene) recomputeCenter(e *entity) error {
	c, err := Circumcenter(
		s.logical(s.entities[e.inputs[0]-1]),
		s.logical(s.entities[e.inputs[1]-1]),
		s.logical(s.entities[e.inputs[2]-1]),
	)
	if err != nil {
		return s.degenerate(e, err)
	}
	e.pos = s.axes.CoordsToPoint(c.X, c.Y)
	return nil
}

// logical returns a point entity's cached position in logical coordinates.
func (s *Scene) logical(e *entity) Point {
	return toLogical(s.axes, e.pos)
}
