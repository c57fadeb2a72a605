package euclid

import (
	"errors"
	"reflect"
	"testing"
)

// fixedMeasurer reports the same extent for every label.
type fixedMeasurer struct{ w, h float64 }

func (m fixedMeasurer) Measure(string) (float64, float64) { return m.w, m.h }

// testRenderer records every request and serves colors from a map.
type testRenderer struct {
	dir     Point
	colors  map[ID]RGBA
	created []ID
	shown   []ID
	drawn   []Snapshot
	begins  []uint64
	ends    []uint64
}

func newTestRenderer() *testRenderer {
	return &testRenderer{dir: Right, colors: make(map[ID]RGBA)}
}

func (r *testRenderer) Create(s Snapshot)     { r.created = append(r.created, s.ID) }
func (r *testRenderer) Show(id ID)            { r.shown = append(r.shown, id) }
func (r *testRenderer) Draw(s Snapshot)       { r.drawn = append(r.drawn, s) }
func (r *testRenderer) LabelDirection() Point { return r.dir }
func (r *testRenderer) BeginFrame(t uint64)   { r.begins = append(r.begins, t) }
func (r *testRenderer) EndFrame(t uint64)     { r.ends = append(r.ends, t) }

func (r *testRenderer) Color(id ID) RGBA {
	if c, ok := r.colors[id]; ok {
		return c
	}
	return White
}

func newTestScene(opts ...SceneOption) *Scene {
	return NewScene(append([]SceneOption{WithLabelMeasurer(fixedMeasurer{0.5, 0.3})}, opts...)...)
}

// coordsPoint creates a point at logical (x, y) and returns it with its
// coordinate scalars.
func coordsPoint(t *testing.T, sc *Scene, x, y float64, opts ...PointOption) (p, xs, ys ID) {
	t.Helper()
	xs = sc.NewValue(x)
	ys = sc.NewValue(y)
	p, err := sc.PointFromCoords(xs, ys, opts...)
	if err != nil {
		t.Fatalf("PointFromCoords(%v, %v): %v", x, y, err)
	}
	return p, xs, ys
}

func TestSceneIDs(t *testing.T) {
	sc := newTestScene()
	a := sc.NewValue(1)
	b := sc.NewValue(2)
	if a != 1 || b != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", a, b)
	}
	if sc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sc.Len())
	}
	for _, id := range []ID{0, 3, 100} {
		if _, err := sc.Kind(id); !errors.Is(err, ErrUnknownEntity) {
			t.Errorf("Kind(%d) error = %v, want ErrUnknownEntity", id, err)
		}
	}
}

func TestSceneKindAndInputs(t *testing.T) {
	sc := newTestScene()
	p, x, y := coordsPoint(t, sc, 1, 2)

	tests := []struct {
		id   ID
		want EntityKind
	}{
		{x, KindValue},
		{y, KindValue},
		{p, KindPoint},
	}
	for _, tt := range tests {
		got, err := sc.Kind(tt.id)
		if err != nil || got != tt.want {
			t.Errorf("Kind(%d) = %v, %v; want %v", tt.id, got, err, tt.want)
		}
	}

	in, err := sc.Inputs(p)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, []ID{x, y}) {
		t.Errorf("Inputs(point) = %v, want [%d %d]", in, x, y)
	}
	in[0] = 99
	if again, _ := sc.Inputs(p); again[0] != x {
		t.Error("Inputs returned the internal slice")
	}
}

func TestTypeMismatch(t *testing.T) {
	sc := newTestScene()
	p, x, y := coordsPoint(t, sc, 0, 0)
	sq, err := sc.PolygonFromPoints(p)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
		id   ID
		got  EntityKind
	}{
		{"point x from point", func() error { _, err := sc.PointFromCoords(p, y); return err }, p, KindPoint},
		{"circle center from value", func() error { _, err := sc.CircleCenterRadius(x, y); return err }, x, KindValue},
		{"circle radius from point", func() error { _, err := sc.CircleCenterRadius(p, p); return err }, p, KindPoint},
		{"center-point with value", func() error { _, err := sc.CircleCenterPoint(p, x); return err }, x, KindValue},
		{"three points with polygon", func() error { _, err := sc.CircleThroughPoints(p, p, sq); return err }, sq, KindPolygon},
		{"polygon from value", func() error { _, err := sc.PolygonFromPoints(p, x); return err }, x, KindValue},
		{"derive from polygon", func() error { _, err := sc.Derive(Pure(func(in ...float64) float64 { return 0 }), sq); return err }, sq, KindPolygon},
		{"set point value", func() error { return sc.SetValue(p, 1) }, p, KindPoint},
		{"value of point", func() error { _, err := sc.Value(p); return err }, p, KindPoint},
		{"position of value", func() error { _, err := sc.Position(x); return err }, x, KindValue},
		{"circle of polygon", func() error { _, err := sc.Circle(sq); return err }, sq, KindPolygon},
		{"vertices of point", func() error { _, err := sc.Vertices(p); return err }, p, KindPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := sc.Len()
			err := tt.call()
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("error = %v, want ErrTypeMismatch", err)
			}
			var tm *TypeMismatchError
			if !errors.As(err, &tm) {
				t.Fatalf("error %T is not a *TypeMismatchError", err)
			}
			if tm.ID != tt.id || tm.Got != tt.got {
				t.Errorf("mismatch = {ID %d Got %v}, want {ID %d Got %v}", tm.ID, tm.Got, tt.id, tt.got)
			}
			if sc.Len() != before {
				t.Errorf("failed construction added %d entities", sc.Len()-before)
			}
		})
	}
}

func TestSetValueDerivedRejected(t *testing.T) {
	sc := newTestScene()
	a := sc.NewValue(1)
	d, err := sc.Derive(Pure(func(in ...float64) float64 { return in[0] * 2 }), a)
	if err != nil {
		t.Fatal(err)
	}
	var tm *TypeMismatchError
	if err := sc.SetValue(d, 3); !errors.As(err, &tm) || tm.Got != KindDerived {
		t.Errorf("SetValue(derived) = %v, want type mismatch", err)
	}
}

func TestRendererNotifications(t *testing.T) {
	r := newTestRenderer()
	sc := newTestScene(WithRenderer(r))

	p1, _, _ := coordsPoint(t, sc, 0, 0)
	p2, _, _ := coordsPoint(t, sc, 1, 0)
	p3, _, _ := coordsPoint(t, sc, 0, 1)
	hidden, _, _ := coordsPoint(t, sc, 2, 2, Hidden())
	c, err := sc.CircleThroughPoints(p1, p2, p3)
	if err != nil {
		t.Fatal(err)
	}
	cs, _ := sc.Circle(c)

	if len(r.created) != sc.Len() {
		t.Errorf("Create called %d times, want %d", len(r.created), sc.Len())
	}
	wantShown := []ID{p1, p2, p3, c}
	if !reflect.DeepEqual(r.shown, wantShown) {
		t.Errorf("shown = %v, want %v", r.shown, wantShown)
	}
	for _, id := range r.shown {
		if id == hidden || id == cs.CenterID {
			t.Errorf("hidden entity %d was shown", id)
		}
	}

	if err := sc.Tick(); err != nil {
		t.Fatal(err)
	}
	if len(r.drawn) != len(wantShown) {
		t.Errorf("drawn %d snapshots, want %d", len(r.drawn), len(wantShown))
	}
	if !reflect.DeepEqual(r.begins, []uint64{1}) || !reflect.DeepEqual(r.ends, []uint64{1}) {
		t.Errorf("frames begin=%v end=%v, want [1] [1]", r.begins, r.ends)
	}

	if err := sc.Show(hidden); err != nil {
		t.Fatal(err)
	}
	if err := sc.Show(hidden); err != nil {
		t.Fatal(err)
	}
	if n := len(r.shown); n != len(wantShown)+1 {
		t.Errorf("Show twice notified %d times", n-len(wantShown))
	}
}

func TestSnapshotColor(t *testing.T) {
	r := newTestRenderer()
	sc := newTestScene(WithRenderer(r))
	p, _, _ := coordsPoint(t, sc, 0, 0)
	r.colors[p] = Yellow

	if err := sc.Tick(); err != nil {
		t.Fatal(err)
	}
	if got := r.drawn[0].Color; got != Yellow {
		t.Errorf("drawn color = %v, want yellow", got)
	}
	snap, err := sc.Snapshot(p)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Color != Yellow || snap.Kind != KindPoint || snap.PointKind != PointCoords {
		t.Errorf("Snapshot = %+v", snap)
	}
}

func TestRemove(t *testing.T) {
	r := newTestRenderer()
	sc := newTestScene(WithRenderer(r))
	p, x, _ := coordsPoint(t, sc, 1, 1)

	if err := sc.Remove(p); err != nil {
		t.Fatal(err)
	}
	if sc.Scheduler().IsRegistered(p) {
		t.Error("removed point still registered")
	}
	_ = sc.SetValue(x, 4)
	if err := sc.Tick(); err != nil {
		t.Fatal(err)
	}
	if len(r.drawn) != 0 {
		t.Errorf("removed point drawn %d times", len(r.drawn))
	}
	if lx, _, _ := sc.Coords(p); !almostEqual(lx, 1, 1e-12) {
		t.Errorf("removed point moved to x=%v", lx)
	}
	if err := sc.Remove(0); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("Remove(0) = %v", err)
	}
}

func TestRecomputeSingle(t *testing.T) {
	sc := newTestScene()
	p, x, _ := coordsPoint(t, sc, 1, 1)
	_ = sc.SetValue(x, -3)

	if err := sc.Recompute(p); err != nil {
		t.Fatal(err)
	}
	if lx, ly, _ := sc.Coords(p); !almostEqual(lx, -3, 1e-12) || !almostEqual(ly, 1, 1e-12) {
		t.Errorf("Coords after Recompute = (%v, %v), want (-3, 1)", lx, ly)
	}
	if sc.Scheduler().Ticks() != 0 {
		t.Error("Recompute advanced the tick counter")
	}
}

func TestPointFollowsScalars(t *testing.T) {
	sc := newTestScene()
	p, x, y := coordsPoint(t, sc, 3, 2)

	want := sc.Axes().CoordsToPoint(3, 2)
	if got, _ := sc.Position(p); got != want {
		t.Errorf("initial Position = %v, want %v", got, want)
	}

	_ = sc.SetValue(x, -2)
	_ = sc.SetValue(y, 3)
	if got, _ := sc.Position(p); got != want {
		t.Errorf("Position changed before tick: %v", got)
	}
	if err := sc.Tick(); err != nil {
		t.Fatal(err)
	}
	if lx, ly, _ := sc.Coords(p); !almostEqual(lx, -2, 1e-12) || !almostEqual(ly, 3, 1e-12) {
		t.Errorf("Coords = (%v, %v), want (-2, 3)", lx, ly)
	}
}

func TestSceneDefaults(t *testing.T) {
	sc := NewScene()
	if sc.Policy() != HoldLastValid {
		t.Errorf("default policy = %v", sc.Policy())
	}
	if _, ok := sc.Axes().(*LinearAxes); !ok {
		t.Errorf("default axes = %T", sc.Axes())
	}
	if _, err := sc.FindIntersections(1, 2); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("FindIntersections default = %v, want ErrUnimplemented", err)
	}
}

func TestEntityKindString(t *testing.T) {
	tests := []struct {
		k    EntityKind
		want string
	}{
		{KindValue, "value"},
		{KindDerived, "derived scalar"},
		{KindPoint, "point"},
		{KindCircle, "circle"},
		{KindPolygon, "polygon"},
		{EntityKind(42), "EntityKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
	if got := CirclePoints.String(); got != "points" {
		t.Errorf("CirclePoints.String() = %q", got)
	}
	if got := PointDerivedCenter.String(); got != "derived center" {
		t.Errorf("PointDerivedCenter.String() = %q", got)
	}
	if FailFast.String() != "fail-fast" || HoldLastValid.String() != "hold-last-valid" {
		t.Error("DegeneracyPolicy.String mismatch")
	}
}
