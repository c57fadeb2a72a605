package euclid

import (
	"fmt"
	"math"
)

// IntersectTolerance decides tangency: intersections closer than this
// (in the coordinates of the inputs) collapse into a single point.
const IntersectTolerance = 1e-9

// FindIntersections returns the points where two shapes cross, in drawing
// coordinates. Shapes are circles or polygons (as closed outlines).
//
// Intersection finding is disabled by default and returns ErrUnimplemented;
// create the scene with WithIntersections to enable it.
func (s *Scene) FindIntersections(a, b ID) ([]Point, error) {
	if !s.opts.intersections {
		return nil, fmt.Errorf("%w: find intersections", ErrUnimplemented)
	}
	ea, err := s.expectShape(a)
	if err != nil {
		return nil, err
	}
	eb, err := s.expectShape(b)
	if err != nil {
		return nil, err
	}

	var out []Point
	switch {
	case ea.kind == KindCircle && eb.kind == KindCircle:
		out = IntersectCircles(ea.center, RadiusScale*ea.logical, eb.center, RadiusScale*eb.logical)
	case ea.kind == KindCircle:
		out = intersectPolygonCircle(eb.vertices, ea.center, RadiusScale*ea.logical)
	case eb.kind == KindCircle:
		out = intersectPolygonCircle(ea.vertices, eb.center, RadiusScale*eb.logical)
	default:
		out = intersectPolygons(ea.vertices, eb.vertices)
	}
	return out, nil
}

func (s *Scene) expectShape(id ID) (*entity, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if e.kind != KindCircle && e.kind != KindPolygon {
		return nil, &TypeMismatchError{ID: id, Want: KindCircle, Got: e.kind}
	}
	return e, nil
}

// IntersectLines returns the intersection of the infinite lines through
// a1, a2 and b1, b2. Parallel (including coincident) lines yield nil.
func IntersectLines(a1, a2, b1, b2 Point) []Point {
	t, _, ok := lineParams(a1, a2, b1, b2)
	if !ok {
		return nil
	}
	return []Point{a1.Lerp(a2, t)}
}

// IntersectSegments returns the intersection of segments a1a2 and b1b2.
// Parallel segments yield nil.
func IntersectSegments(a1, a2, b1, b2 Point) []Point {
	t, u, ok := lineParams(a1, a2, b1, b2)
	if !ok || !inUnit(t) || !inUnit(u) {
		return nil
	}
	return []Point{a1.Lerp(a2, t)}
}

// lineParams solves a1 + t*(a2-a1) = b1 + u*(b2-b1).
func lineParams(a1, a2, b1, b2 Point) (t, u float64, ok bool) {
	r := a2.Sub(a1)
	q := b2.Sub(b1)
	denom := r.Cross(q)
	if math.Abs(denom) <= IntersectTolerance*r.Length()*q.Length() {
		return 0, 0, false
	}
	w := b1.Sub(a1)
	return w.Cross(q) / denom, w.Cross(r) / denom, true
}

// IntersectLineCircle returns the intersections of the infinite line
// through a1, a2 with the circle (c, r): zero, one (tangent) or two points.
func IntersectLineCircle(a1, a2, c Point, r float64) []Point {
	ts := lineCircleParams(a1, a2, c, r)
	out := make([]Point, 0, len(ts))
	for _, t := range ts {
		out = append(out, a1.Lerp(a2, t))
	}
	return out
}

// lineCircleParams returns the line parameters of the intersections.
func lineCircleParams(a1, a2, c Point, r float64) []float64 {
	d := a2.Sub(a1)
	f := a1.Sub(c)
	a := d.Dot(d)
	if a == 0 {
		return nil
	}
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - r*r

	// Distance from the center to the line decides tangency.
	dist := math.Abs(d.Cross(f)) / math.Sqrt(a)
	if math.Abs(dist-r) <= IntersectTolerance {
		return []float64{-b / (2 * a)}
	}
	if dist > r {
		return nil
	}
	return SolveQuadratic(a, b, cc)
}

// IntersectCircles returns the intersections of circles (c1, r1) and
// (c2, r2): zero, one (tangent) or two points. Concentric circles yield nil.
func IntersectCircles(c1 Point, r1 float64, c2 Point, r2 float64) []Point {
	d := c1.Distance(c2)
	if d <= IntersectTolerance {
		return nil
	}
	if d > r1+r2+IntersectTolerance || d < math.Abs(r1-r2)-IntersectTolerance {
		return nil
	}

	dir := c2.Sub(c1).Mul(1 / d)
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	base := c1.Add(dir.Mul(a))

	if math.Abs(d-(r1+r2)) <= IntersectTolerance || math.Abs(d-math.Abs(r1-r2)) <= IntersectTolerance {
		return []Point{base}
	}

	h := math.Sqrt(math.Max(r1*r1-a*a, 0))
	perp := Pt(-dir.Y, dir.X).Mul(h)
	return []Point{base.Add(perp), base.Sub(perp)}
}

func intersectPolygonCircle(vertices []Point, c Point, r float64) []Point {
	var out []Point
	forEachEdge(vertices, func(a, b Point) {
		for _, t := range lineCircleParams(a, b, c, r) {
			if inUnit(t) {
				out = appendUnique(out, a.Lerp(b, t))
			}
		}
	})
	return out
}

func intersectPolygons(va, vb []Point) []Point {
	var out []Point
	forEachEdge(va, func(a1, a2 Point) {
		forEachEdge(vb, func(b1, b2 Point) {
			for _, p := range IntersectSegments(a1, a2, b1, b2) {
				out = appendUnique(out, p)
			}
		})
	})
	return out
}

// forEachEdge calls fn for every edge of the closed outline.
func forEachEdge(vertices []Point, fn func(a, b Point)) {
	n := len(vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		if n == 2 && i == 1 {
			return
		}
		fn(a, b)
	}
}

func inUnit(t float64) bool {
	return t >= -IntersectTolerance && t <= 1+IntersectTolerance
}

func appendUnique(pts []Point, p Point) []Point {
	for _, q := range pts {
		if q.Approx(p, IntersectTolerance*1e3) {
			return pts
		}
	}
	return append(pts, p)
}
