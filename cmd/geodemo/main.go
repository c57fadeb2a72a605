// Command geodemo plays a small reactive construction and renders it to PNG.
//
// Two values u and v drive five labeled points A(u, v), B(v, u), C(-v, u),
// D(-v, -u) and E(v, -u), a pentagon through them and the circle through
// A, B and C. The values are swept through the configured keyframes twice,
// once before the last three points exist and once after.
//
// Usage:
//
//	geodemo [-config demo.yaml] [-output geodemo.png] [-frames dir] [-v]
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/euclid"
	"github.com/gogpu/euclid/recording"
	"github.com/gogpu/euclid/recording/backends/raster"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML config file")
		width   = flag.Int("width", 0, "image width (overrides config)")
		height  = flag.Int("height", 0, "image height (overrides config)")
		fps     = flag.Int("fps", 0, "ticks per second of animation (overrides config)")
		output  = flag.String("output", "geodemo.png", "output file for the last frame")
		frames  = flag.String("frames", "", "directory to write every frame to")
		verbose = flag.Bool("v", false, "log construction and playback")
	)
	flag.Parse()

	if *verbose {
		euclid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = LoadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	d, rec, err := run(cfg)
	if err != nil {
		log.Fatalf("Construction failed: %v", err)
	}

	opts := cfg.rasterOptions()
	opts.KeepFrames = *frames != ""
	backend := raster.New(opts)
	if err := rec.Finish().Playback(backend); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}

	if *frames != "" {
		if err := os.MkdirAll(*frames, 0o755); err != nil {
			log.Fatalf("Failed to create %s: %v", *frames, err)
		}
		if err := backend.SaveFrames(*frames, "frame"); err != nil {
			log.Fatalf("Failed to save frames: %v", err)
		}
		log.Printf("%d frames saved to %s\n", len(backend.Frames()), *frames)
	}
	if err := backend.SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d ticks)\n", *output, cfg.Width, cfg.Height, d.sc.Scheduler().Ticks())
}

type demo struct {
	sc   *euclid.Scene
	cfg  Config
	u, v euclid.ID
}

// run builds the construction and plays it into a recorder.
func run(cfg Config) (*demo, *recording.Recorder, error) {
	axes, err := euclid.NewLinearAxes(cfg.axes())
	if err != nil {
		return nil, nil, err
	}
	rec := recording.NewRecorder()
	rec.SetLabelDirection(cfg.labelDirection())
	d := &demo{
		sc:  euclid.NewScene(euclid.WithRenderer(rec), euclid.WithAxes(axes)),
		cfg: cfg,
	}
	if err := d.construct(rec); err != nil {
		return nil, nil, err
	}
	return d, rec, nil
}

func (d *demo) construct(rec *recording.Recorder) error {
	sc := d.sc
	d.u = sc.NewValue(3)
	d.v = sc.NewValue(2)
	negate := euclid.Pure(func(in ...float64) float64 { return -in[0] })
	negU, err := sc.Derive(negate, d.u)
	if err != nil {
		return err
	}
	negV, err := sc.Derive(negate, d.v)
	if err != nil {
		return err
	}

	a, err := sc.PointFromCoords(d.u, d.v, euclid.WithLabel("A"))
	if err != nil {
		return err
	}
	b, err := sc.PointFromCoords(d.v, d.u, euclid.WithLabel("B"))
	if err != nil {
		return err
	}
	if err := d.sweep(); err != nil {
		return err
	}

	c, err := sc.PointFromCoords(negV, d.u, euclid.WithLabel("C"))
	if err != nil {
		return err
	}
	dd, err := sc.PointFromCoords(negV, negU, euclid.WithLabel("D"))
	if err != nil {
		return err
	}
	e, err := sc.PointFromCoords(d.v, negU, euclid.WithLabel("E"))
	if err != nil {
		return err
	}

	poly, err := sc.PolygonFromPoints(a, b, c, dd, e)
	if err != nil {
		return err
	}
	rec.SetColor(poly, euclid.Blue)

	circle, err := sc.CircleThroughPoints(a, b, c)
	if err != nil {
		return err
	}
	rec.SetColor(circle, euclid.Yellow)

	if err := d.sweep(); err != nil {
		return err
	}
	return d.wait(d.cfg.Hold)
}

// sweep tweens (u, v) through every keyframe, one second each.
func (d *demo) sweep() error {
	for _, k := range d.cfg.Keyframes {
		if err := d.tween(euclid.Pt(k.U, k.V)); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) tween(to euclid.Point) error {
	u0, err := d.sc.Value(d.u)
	if err != nil {
		return err
	}
	v0, err := d.sc.Value(d.v)
	if err != nil {
		return err
	}
	from := euclid.Pt(u0, v0)
	n := d.cfg.FPS
	for i := 1; i <= n; i++ {
		p := to
		if i < n {
			p = from.Lerp(to, float64(i)/float64(n))
		}
		if err := d.sc.SetValue(d.u, p.X); err != nil {
			return err
		}
		if err := d.sc.SetValue(d.v, p.Y); err != nil {
			return err
		}
		if err := d.sc.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) wait(seconds int) error {
	for i := 0; i < seconds*d.cfg.FPS; i++ {
		if err := d.sc.Tick(); err != nil {
			return err
		}
	}
	return nil
}
