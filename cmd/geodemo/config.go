package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/euclid"
	"github.com/gogpu/euclid/recording/backends/raster"
)

// Config is the demo configuration. Fields left out of a config file keep
// their defaults.
type Config struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	FPS           int     `yaml:"fps"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	StrokeWidth   float64 `yaml:"stroke_width"`
	Background    string  `yaml:"background"`

	// LabelDirection is one of right, left, up or down.
	LabelDirection string `yaml:"label_direction"`

	Axes AxesConfig `yaml:"axes"`

	// Keyframes are the (u, v) values each sweep tweens through.
	Keyframes []Keyframe `yaml:"keyframes"`

	// Hold is the number of seconds the final state is held.
	Hold int `yaml:"hold"`
}

// AxesConfig mirrors euclid.AxesConfig with the origin at the drawing center.
type AxesConfig struct {
	XMin        float64 `yaml:"x_min"`
	XMax        float64 `yaml:"x_max"`
	YMin        float64 `yaml:"y_min"`
	YMax        float64 `yaml:"y_max"`
	XAxisWidth  float64 `yaml:"x_axis_width"`
	YAxisHeight float64 `yaml:"y_axis_height"`
}

// Keyframe is one (u, v) target of a sweep.
type Keyframe struct {
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
}

// DefaultConfig returns the GeometryTest setup: u=3, v=2 swept through
// (-2, 3), (1, -2) and back to (3, 2), then held for two seconds.
func DefaultConfig() Config {
	ax := euclid.DefaultAxesConfig()
	ro := raster.DefaultOptions()
	return Config{
		Width:          ro.Width,
		Height:         ro.Height,
		FPS:            15,
		PixelsPerUnit:  ro.PixelsPerUnit,
		StrokeWidth:    ro.StrokeWidth,
		Background:     "#000000",
		LabelDirection: "right",
		Axes: AxesConfig{
			XMin: ax.XMin, XMax: ax.XMax,
			YMin: ax.YMin, YMax: ax.YMax,
			XAxisWidth: ax.XAxisWidth, YAxisHeight: ax.YAxisHeight,
		},
		Keyframes: []Keyframe{{U: -2, V: 3}, {U: 1, V: -2}, {U: 3, V: 2}},
		Hold:      2,
	}
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the config for values the demo cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.PixelsPerUnit <= 0 {
		return fmt.Errorf("pixels_per_unit must be positive, got %g", c.PixelsPerUnit)
	}
	if c.Hold < 0 {
		return fmt.Errorf("hold must not be negative, got %d", c.Hold)
	}
	if _, ok := labelDirections[c.LabelDirection]; !ok {
		return fmt.Errorf("unknown label_direction %q", c.LabelDirection)
	}
	if _, err := euclid.NewLinearAxes(c.axes()); err != nil {
		return err
	}
	return nil
}

var labelDirections = map[string]euclid.Point{
	"right": euclid.Right,
	"left":  euclid.Left,
	"up":    euclid.Up,
	"down":  euclid.Down,
}

func (c Config) labelDirection() euclid.Point {
	return labelDirections[c.LabelDirection]
}

func (c Config) axes() euclid.AxesConfig {
	return euclid.AxesConfig{
		XMin: c.Axes.XMin, XMax: c.Axes.XMax,
		YMin: c.Axes.YMin, YMax: c.Axes.YMax,
		XAxisWidth:  c.Axes.XAxisWidth,
		YAxisHeight: c.Axes.YAxisHeight,
	}
}

func (c Config) rasterOptions() raster.Options {
	opts := raster.DefaultOptions()
	opts.Width, opts.Height = c.Width, c.Height
	opts.PixelsPerUnit = c.PixelsPerUnit
	opts.StrokeWidth = c.StrokeWidth
	opts.Background = euclid.Hex(c.Background)
	return opts
}
