package euclid

import (
	"testing"
)

func TestLabelPlacement(t *testing.T) {
	tests := []struct {
		name string
		dir  Point
		want Point
	}{
		{"right", Right, Pt(DotRadius+LabelBuff+0.25, 0)},
		{"left", Left, Pt(-(DotRadius + LabelBuff + 0.25), 0)},
		{"up", Up, Pt(0, DotRadius+LabelBuff+0.15)},
		{"down", Down, Pt(0, -(DotRadius + LabelBuff + 0.15))},
		{"unnormalized", Pt(0, 4), Pt(0, DotRadius+LabelBuff+0.15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer()
			r.dir = tt.dir
			sc := newTestScene(WithRenderer(r))
			p, _, _ := coordsPoint(t, sc, 0, 0, WithLabel("A"))

			l, ok, err := sc.Label(p)
			if err != nil || !ok {
				t.Fatalf("Label = %v, %v", ok, err)
			}
			if l.Text != "A" || l.Width != 0.5 || l.Height != 0.3 {
				t.Errorf("Label = %+v", l)
			}
			if !l.Center.Approx(tt.want, 1e-12) {
				t.Errorf("Center = %v, want %v", l.Center, tt.want)
			}
		})
	}
}

func TestLabelFollowsPointAndColor(t *testing.T) {
	r := newTestRenderer()
	sc := newTestScene(WithRenderer(r))
	p, x, _ := coordsPoint(t, sc, 0, 0, WithLabel("B"))

	if l, _, _ := sc.Label(p); l.Color != White {
		t.Errorf("initial label color = %v, want white", l.Color)
	}

	r.colors[p] = Yellow
	_ = sc.SetValue(x, 2)
	if err := sc.Tick(); err != nil {
		t.Fatal(err)
	}

	l, _, _ := sc.Label(p)
	if l.Color != Yellow {
		t.Errorf("label color = %v, want yellow", l.Color)
	}
	pos, _ := sc.Position(p)
	want := pos.Add(Pt(DotRadius+LabelBuff+0.25, 0))
	if !l.Center.Approx(want, 1e-12) {
		t.Errorf("label center = %v, want %v", l.Center, want)
	}

	drawn := r.drawn[len(r.drawn)-1]
	if drawn.Label == nil || drawn.Label.Color != Yellow {
		t.Errorf("drawn label = %+v", drawn.Label)
	}
}

func TestLabelAbsent(t *testing.T) {
	sc := newTestScene()
	p, _, _ := coordsPoint(t, sc, 0, 0)
	if _, ok, err := sc.Label(p); ok || err != nil {
		t.Errorf("Label of unlabeled point = %v, %v", ok, err)
	}
	if snap, _ := sc.Snapshot(p); snap.Label != nil {
		t.Error("snapshot of unlabeled point has a label")
	}
}

func TestLabelDefaultMeasurer(t *testing.T) {
	sc := NewScene()
	p, _, _ := coordsPoint(t, sc, 0, 0, WithLabel("A"))
	wide, _, _ := coordsPoint(t, sc, 0, 0, WithLabel("AAAA"))

	l, _, _ := sc.Label(p)
	if l.Width <= 0 || l.Height <= 0 {
		t.Fatalf("extent = %v x %v", l.Width, l.Height)
	}
	if l.Height > 2*DefaultLabelSize {
		t.Errorf("height %v too large for size %v", l.Height, DefaultLabelSize)
	}
	lw, _, _ := sc.Label(wide)
	if lw.Width <= l.Width {
		t.Errorf("width of AAAA (%v) <= width of A (%v)", lw.Width, l.Width)
	}
}
