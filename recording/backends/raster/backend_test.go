package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/euclid"
	"github.com/gogpu/euclid/recording"
)

func recordScene(t *testing.T, ticks int) (*euclid.Scene, *recording.Recorder, euclid.ID, euclid.ID) {
	t.Helper()
	rec := recording.NewRecorder()
	sc := euclid.NewScene(euclid.WithRenderer(rec))

	zero := sc.NewValue(0)
	one := sc.NewValue(1)
	origin, err := sc.PointFromCoords(zero, zero, euclid.WithLabel("O"))
	if err != nil {
		t.Fatalf("PointFromCoords: %v", err)
	}
	circle, err := sc.CircleCenterRadius(origin, one)
	if err != nil {
		t.Fatalf("CircleCenterRadius: %v", err)
	}
	rec.SetColor(origin, euclid.Red)
	rec.SetColor(circle, euclid.Yellow)

	for i := 0; i < ticks; i++ {
		if err := sc.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	return sc, rec, origin, circle
}

func TestRegistered(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	b, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("NewBackend(raster) returned %T", b)
	}
}

func TestRenderDotAndCircle(t *testing.T) {
	_, rec, _, _ := recordScene(t, 1)

	b := New(DefaultOptions())
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	if c := b.Pixel(euclid.Pt(0, 0)); c.R < 0.94 || c.G > 0.06 || c.B > 0.06 {
		t.Errorf("dot pixel = %+v, want red", c)
	}

	// The circle outline crosses the x axis at the drawing radius.
	edge := euclid.Pt(euclid.RadiusScale, 0)
	if c := b.Pixel(edge); c.R < 0.94 || c.G < 0.94 || c.B > 0.06 {
		t.Errorf("circle pixel = %+v, want yellow", c)
	}

	// Halfway between dot and outline is background.
	if c := b.Pixel(euclid.Pt(-euclid.RadiusScale/2, -0.2)); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("interior pixel = %+v, want black", c)
	}
}

func TestKeepFrames(t *testing.T) {
	_, rec, _, _ := recordScene(t, 3)

	opts := DefaultOptions()
	opts.KeepFrames = true
	b := New(opts)
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if n := len(b.Frames()); n != 3 {
		t.Errorf("kept %d frames, want 3", n)
	}

	last := New(DefaultOptions())
	if err := rec.Finish().Playback(last); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if n := len(last.Frames()); n != 1 {
		t.Errorf("kept %d frames without KeepFrames, want 1", n)
	}
}

func TestWriteTo(t *testing.T) {
	_, rec, _, _ := recordScene(t, 1)

	b := New(DefaultOptions())
	if _, err := b.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before playback should fail")
	}
	if err := rec.Finish().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != DefaultOptions().Width {
		t.Errorf("image width = %d, want %d", got, DefaultOptions().Width)
	}
}

func TestBeginRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	if err := New(opts).Begin(1); err == nil {
		t.Error("Begin with zero width should fail")
	}

	opts = DefaultOptions()
	opts.PixelsPerUnit = -1
	if err := New(opts).Begin(1); err == nil {
		t.Error("Begin with negative scale should fail")
	}

	if err := New(DefaultOptions()).DrawFrame(recording.Frame{}); err == nil {
		t.Error("DrawFrame before Begin should fail")
	}
}
