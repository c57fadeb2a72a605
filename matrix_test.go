package euclid

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, -2), Pt(3, -2)},
		{"translate", Translate(1, 2), Pt(3, -2), Pt(4, 0)},
		{"scale", Scale(0.6, 2), Pt(3, -2), Pt(1.8, -4)},
		{"translate after scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
		{"scale after translate", Scale(2, 2).Multiply(Translate(1, 1)), Pt(1, 1), Pt(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(-3, 7)},
		{"scale", Scale(0.6, 0.25)},
		{"axes", Translate(1, -1).Multiply(Scale(0.6, 0.6))},
		{"shear", Matrix{A: 1, B: 0.5, C: 2, D: 0.25, E: 1, F: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatalf("Invert() reported singular for %+v", tt.m)
			}
			if got := tt.m.Multiply(inv); !matrixApprox(got, Identity(), 1e-12) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
			p := Pt(2.5, -1.25)
			if got := inv.TransformPoint(tt.m.TransformPoint(p)); !got.Approx(p, 1e-12) {
				t.Errorf("round trip of %v = %v", p, got)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	for _, m := range []Matrix{Scale(0, 1), Scale(1, 0), {A: 1, B: 2, D: 2, E: 4}} {
		if _, ok := m.Invert(); ok {
			t.Errorf("Invert(%+v) reported invertible", m)
		}
	}
}

func TestMatrixDeterminant(t *testing.T) {
	if got := Scale(2, 3).Determinant(); got != 6 {
		t.Errorf("Scale(2,3).Determinant() = %v, want 6", got)
	}
	if got := Translate(5, 5).Determinant(); got != 1 {
		t.Errorf("Translate.Determinant() = %v, want 1", got)
	}
}

func matrixApprox(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps && math.Abs(a.B-b.B) <= eps && math.Abs(a.C-b.C) <= eps &&
		math.Abs(a.D-b.D) <= eps && math.Abs(a.E-b.E) <= eps && math.Abs(a.F-b.F) <= eps
}
