package euclid

import "math"

// SolveQuadratic returns the real roots of ax^2 + bx + c = 0 in ascending
// order. A zero a reduces to the linear equation bx + c = 0; a double root
// is returned once. Line and circle intersection calls it with a > 0.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	switch {
	case !(disc >= 0) || math.IsInf(disc, 0):
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}

	// q carries the sign of b so the two roots never cancel.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r1, r2 := q/a, c/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
