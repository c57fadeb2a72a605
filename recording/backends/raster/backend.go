// Package raster provides a raster backend for the recording system.
// It renders recorded frames to RGBA images: points as dots, circles and
// polygons as outlines, labels as text.
//
// Shapes are filled with the golang.org/x/image/vector rasterizer; labels
// are drawn with the Go Regular font through golang.org/x/image/font.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/euclid/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.New(raster.DefaultOptions())
//
//	// Playback recording
//	rec.Finish().Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/euclid"
	"github.com/gogpu/euclid/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return New(DefaultOptions())
	})
}

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 96

// Options configures the raster backend.
type Options struct {
	// Width and Height are the image size in pixels.
	Width, Height int

	// PixelsPerUnit is the size of one drawing unit. The drawing origin is
	// the image center and y points up.
	PixelsPerUnit float64

	// StrokeWidth is the outline width in pixels.
	StrokeWidth float64

	Background euclid.RGBA

	// KeepFrames keeps every frame. Otherwise only the last one is kept.
	KeepFrames bool
}

// DefaultOptions returns an 854x480 canvas, 60 pixels per unit, on black.
func DefaultOptions() Options {
	return Options{
		Width:         854,
		Height:        480,
		PixelsPerUnit: 60,
		StrokeWidth:   3,
		Background:    euclid.Black,
	}
}

// Backend renders frames to images.
type Backend struct {
	opts   Options
	face   font.Face
	raster *vector.Rasterizer

	frames []*image.RGBA
	ended  bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// New creates a raster backend. Begin must be called before drawing.
func New(opts Options) *Backend {
	return &Backend{opts: opts}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(frames int) error {
	if b.opts.Width <= 0 || b.opts.Height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", b.opts.Width, b.opts.Height)
	}
	if b.opts.PixelsPerUnit <= 0 {
		return fmt.Errorf("raster: invalid pixels per unit %g", b.opts.PixelsPerUnit)
	}
	face, err := newLabelFace(euclid.DefaultLabelSize * b.opts.PixelsPerUnit)
	if err != nil {
		return err
	}
	b.face = face
	b.raster = vector.NewRasterizer(b.opts.Width, b.opts.Height)
	b.frames = b.frames[:0]
	if b.opts.KeepFrames {
		b.frames = make([]*image.RGBA, 0, frames)
	}
	b.ended = false
	return nil
}

func newLabelFace(px float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: label face: %w", err)
	}
	return face, nil
}

// DrawFrame implements recording.Backend.
func (b *Backend) DrawFrame(f recording.Frame) error {
	if b.raster == nil {
		return fmt.Errorf("raster: DrawFrame before Begin")
	}
	img := image.NewRGBA(image.Rect(0, 0, b.opts.Width, b.opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(b.opts.Background.Color()), image.Point{}, draw.Src)

	for _, s := range f.Shapes {
		switch s.Kind {
		case euclid.KindPoint:
			b.drawDot(img, s)
		case euclid.KindCircle:
			b.drawCircle(img, s)
		case euclid.KindPolygon:
			b.drawPolygon(img, s)
		case euclid.KindValue, euclid.KindDerived:
			// Scalars have no visual.
		}
	}

	if b.opts.KeepFrames || len(b.frames) == 0 {
		b.frames = append(b.frames, img)
	} else {
		b.frames[len(b.frames)-1] = img
	}
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error {
	b.ended = true
	euclid.Logger().Debug("raster: frames rendered", slog.Int("kept", len(b.frames)))
	return nil
}

// Frames returns the kept frames.
func (b *Backend) Frames() []*image.RGBA {
	return b.frames
}

// Image returns the last rendered frame, or nil.
func (b *Backend) Image() *image.RGBA {
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// WriteTo implements recording.WriterBackend. It encodes the last frame as
// PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	img := b.Image()
	if !b.ended || img == nil {
		return 0, fmt.Errorf("raster: no finished frame")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, img)
	return cw.n, err
}

// SaveToFile implements recording.FileBackend.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SaveFrames writes every kept frame to dir as prefix-NNNN.png.
func (b *Backend) SaveFrames(dir, prefix string) error {
	for i, img := range b.frames {
		path := filepath.Join(dir, fmt.Sprintf("%s-%04d.png", prefix, i))
		if err := savePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// toPixel maps a drawing position to pixel coordinates.
func (b *Backend) toPixel(p euclid.Point) (float32, float32) {
	x := float64(b.opts.Width)/2 + p.X*b.opts.PixelsPerUnit
	y := float64(b.opts.Height)/2 - p.Y*b.opts.PixelsPerUnit
	return float32(x), float32(y)
}

func (b *Backend) fill(img *image.RGBA, c euclid.RGBA) {
	b.raster.DrawOp = draw.Over
	b.raster.Draw(img, img.Bounds(), image.NewUniform(c.Color()), image.Point{})
	b.raster.Reset(b.opts.Width, b.opts.Height)
}

// ring adds a closed circle of radius r (pixels) around (cx, cy). A negative
// direction reverses the winding so a second ring cuts a hole.
func (b *Backend) ring(cx, cy, r float32, direction float64) {
	for i := 0; i <= circleSegments; i++ {
		a := direction * 2 * math.Pi * float64(i) / circleSegments
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			b.raster.MoveTo(x, y)
		} else {
			b.raster.LineTo(x, y)
		}
	}
	b.raster.ClosePath()
}

func (b *Backend) drawDot(img *image.RGBA, s euclid.Snapshot) {
	cx, cy := b.toPixel(s.Position)
	if s.PointKind == euclid.PointCoords {
		b.ring(cx, cy, float32(euclid.DotRadius*b.opts.PixelsPerUnit), 1)
		b.fill(img, s.Color)
	}
	if s.Label != nil {
		b.drawLabel(img, s.Label)
	}
}

func (b *Backend) drawCircle(img *image.RGBA, s euclid.Snapshot) {
	c := s.Circle
	if c == nil {
		return
	}
	cx, cy := b.toPixel(c.Center)
	r := float32(c.Radius * b.opts.PixelsPerUnit)
	half := float32(b.opts.StrokeWidth / 2)
	b.ring(cx, cy, r+half, 1)
	if r > half {
		b.ring(cx, cy, r-half, -1)
	}
	b.fill(img, s.Color)
}

func (b *Backend) drawPolygon(img *image.RGBA, s euclid.Snapshot) {
	n := len(s.Vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		b.segment(s.Vertices[i], s.Vertices[(i+1)%n])
	}
	b.fill(img, s.Color)
}

// segment adds a stroke-wide quad along p->q.
func (b *Backend) segment(p, q euclid.Point) {
	x0, y0 := b.toPixel(p)
	x1, y1 := b.toPixel(q)
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	h := b.opts.StrokeWidth / 2
	nx, ny := float32(-dy/l*h), float32(dx/l*h)
	b.raster.MoveTo(x0+nx, y0+ny)
	b.raster.LineTo(x1+nx, y1+ny)
	b.raster.LineTo(x1-nx, y1-ny)
	b.raster.LineTo(x0-nx, y0-ny)
	b.raster.ClosePath()
}

func (b *Backend) drawLabel(img *image.RGBA, l *euclid.LabelState) {
	cx, cy := b.toPixel(l.Center)
	width := font.MeasureString(b.face, l.Text)
	m := b.face.Metrics()
	baseline := fixed.Int26_6(cy*64) + (m.Ascent-m.Descent)/2
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(l.Color.Color()),
		Face: b.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(cx*64) - width/2, Y: baseline},
	}
	d.DrawString(l.Text)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Pixel returns the color at the pixel of a drawing position in the last
// frame, or transparent black before the first frame.
func (b *Backend) Pixel(p euclid.Point) euclid.RGBA {
	img := b.Image()
	if img == nil {
		return euclid.RGBA{}
	}
	x, y := b.toPixel(p)
	return euclid.FromColor(img.At(int(x), int(y)))
}
