package euclid

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}

	sorted := append([]float64(nil), roots...)
	sort.Float64s(sorted)
	want := append([]float64(nil), expected...)
	sort.Float64s(want)

	for i := range sorted {
		if !almostEqual(sorted[i], want[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v)", name, i, sorted[i], want[i], sorted)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"x^2 - 5 = 0", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"x^2 + 5 = 0 has no real roots", 1, 0, 5, nil},
		{"linear x + 5 = 0", 0, 1, 5, []float64{-5}},
		{"double root at -1", 1, 2, 1, []float64{-1}},
		{"roots 2 and 3", 1, -5, 6, []float64{2, 3}},
		{"scaled roots 2 and 3", 2, -10, 12, []float64{2, 3}},
		// Line (-2,0)->(2,0) against the unit circle.
		{"line through unit circle", 16, -16, 3, []float64{0.25, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			verifySolverRoots(t, tt.name, roots, tt.expected, 1e-10)

			for _, r := range roots {
				if v := tt.a*r*r + tt.b*r + tt.c; math.Abs(v) > 1e-8 {
					t.Errorf("root %v gives f(x) = %v, want 0", r, v)
				}
			}
		})
	}
}

func TestSolveQuadraticAscending(t *testing.T) {
	roots := SolveQuadratic(-1, 0, 4)
	if len(roots) != 2 || roots[0] > roots[1] {
		t.Errorf("SolveQuadratic(-1, 0, 4) = %v, want ascending pair", roots)
	}
}

func TestSolveQuadratic_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
	}{
		{"all zero", 0, 0, 0},
		{"0 = 1", 0, 0, 1},
		{"negative discriminant", 1, 0, 1},
		{"overflowing discriminant", 1, 1e200, 1},
		{"nan coefficient", 1, math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if roots := SolveQuadratic(tt.a, tt.b, tt.c); roots != nil {
				t.Errorf("SolveQuadratic(%v, %v, %v) = %v, want nil", tt.a, tt.b, tt.c, roots)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect bool
	}{
		{"positive", 1.0, true},
		{"negative", -1.0, true},
		{"zero", 0.0, true},
		{"inf", math.Inf(1), false},
		{"neg inf", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFinite(tt.x); got != tt.expect {
				t.Errorf("isFinite(%v) = %v, want %v", tt.x, got, tt.expect)
			}
		})
	}
}
