package euclid

import "math"

// collinearEpsilon is the relative tolerance of the collinearity test.
const collinearEpsilon = 1e-12

// Collinear reports whether three points lie on one line. The edge vectors
// are normalized before their cross product is taken, so the test does not
// depend on the scale of the coordinates.
func Collinear(p1, p2, p3 Point) bool {
	a := p2.Sub(p1)
	b := p3.Sub(p2)
	if a.Length() == 0 || b.Length() == 0 {
		return true
	}
	return math.Abs(a.Normalize().Cross(b.Normalize())) <= collinearEpsilon
}

// Circumcenter returns the point equidistant from p1, p2 and p3, all in
// logical coordinates. Collinear (or coincident) points return a
// *DegenerateConstructionError.
//
// The branches follow the perpendicular bisectors so that no division by
// zero can occur when two points share an x coordinate or a bisector is
// horizontal.
func Circumcenter(p1, p2, p3 Point) (Point, error) {
	if Collinear(p1, p2, p3) {
		return Point{}, &DegenerateConstructionError{Points: [3]Point{p1, p2, p3}}
	}

	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	var x, y float64
	switch {
	case x1 == x2:
		// P1P2 is vertical: its bisector is horizontal.
		y = (y1 + y2) / 2
		x = (y3-y2)*((y2+y3)/2-y)/(x3-x2) + (x2+x3)/2
	case x2 == x3:
		// P2P3 is vertical.
		y = (y2 + y3) / 2
		x = (y2-y1)*((y1+y2)/2-y)/(x2-x1) + (x1+x2)/2
	default:
		ma := (y2 - y1) / (x2 - x1)
		mb := (y3 - y2) / (x3 - x2)
		if ma == mb {
			return Point{}, &DegenerateConstructionError{Points: [3]Point{p1, p2, p3}}
		}
		x = (ma*mb*(y1-y3) + mb*(x1+x2) - ma*(x2+x3)) / (2 * (mb - ma))
		if y3 == y2 {
			// mb is zero, use the bisector of P1P2.
			y = (-1/ma)*(x-(x1+x2)/2) + (y1+y2)/2
		} else {
			y = (-1/mb)*(x-(x2+x3)/2) + (y2+y3)/2
		}
	}

	c := Pt(x, y)
	if !c.isFinite() {
		return Point{}, &DegenerateConstructionError{Points: [3]Point{p1, p2, p3}}
	}
	return c, nil
}
