package euclid

import "fmt"

// Axes maps between logical axis coordinates and drawing coordinates.
// Implementations must be pure for the duration of a tick and bijective.
type Axes interface {
	// CoordsToPoint maps logical (x, y) to a drawing position.
	CoordsToPoint(x, y float64) Point

	// PointToCoords maps a drawing position back to logical coordinates.
	PointToCoords(p Point) (x, y float64)
}

// AxesConfig describes a pair of linear axes.
type AxesConfig struct {
	// Origin is the drawing position of logical (0, 0).
	Origin Point

	XMin, XMax float64
	YMin, YMax float64

	// XAxisWidth and YAxisHeight are the drawing lengths of the full ranges.
	XAxisWidth  float64
	YAxisHeight float64
}

// DefaultAxesConfig returns axes spanning [-5, 5] on both axes, drawn
// 6 units long and centered on the drawing origin.
func DefaultAxesConfig() AxesConfig {
	return AxesConfig{
		Origin:      Pt(0, 0),
		XMin:        -5,
		XMax:        5,
		YMin:        -5,
		YMax:        5,
		XAxisWidth:  6,
		YAxisHeight: 6,
	}
}

// LinearAxes is an Axes backed by an affine transform and its inverse.
type LinearAxes struct {
	cfg     AxesConfig
	forward Matrix
	inverse Matrix
}

// NewLinearAxes builds axes from cfg.
// Returns ErrInvalidAxes if a range is empty or an axis length is not positive.
func NewLinearAxes(cfg AxesConfig) (*LinearAxes, error) {
	if cfg.XMax <= cfg.XMin || cfg.YMax <= cfg.YMin {
		return nil, fmt.Errorf("%w: empty range x=[%g, %g] y=[%g, %g]",
			ErrInvalidAxes, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax)
	}
	if cfg.XAxisWidth <= 0 || cfg.YAxisHeight <= 0 {
		return nil, fmt.Errorf("%w: axis lengths %g x %g", ErrInvalidAxes, cfg.XAxisWidth, cfg.YAxisHeight)
	}

	xUnit := cfg.XAxisWidth / (cfg.XMax - cfg.XMin)
	yUnit := cfg.YAxisHeight / (cfg.YMax - cfg.YMin)
	forward := Translate(cfg.Origin.X, cfg.Origin.Y).Multiply(Scale(xUnit, yUnit))
	inverse, ok := forward.Invert()
	if !ok {
		return nil, fmt.Errorf("%w: transform is singular", ErrInvalidAxes)
	}
	return &LinearAxes{cfg: cfg, forward: forward, inverse: inverse}, nil
}

// MustLinearAxes is like NewLinearAxes but panics on error.
func MustLinearAxes(cfg AxesConfig) *LinearAxes {
	a, err := NewLinearAxes(cfg)
	if err != nil {
		panic(err)
	}
	return a
}

// Config returns the configuration the axes were built from.
func (a *LinearAxes) Config() AxesConfig { return a.cfg }

// Unit returns the drawing length of one logical unit on each axis.
func (a *LinearAxes) Unit() (x, y float64) { return a.forward.A, a.forward.E }

// CoordsToPoint implements Axes.
func (a *LinearAxes) CoordsToPoint(x, y float64) Point {
	return a.forward.TransformPoint(Pt(x, y))
}

// PointToCoords implements Axes.
func (a *LinearAxes) PointToCoords(p Point) (x, y float64) {
	q := a.inverse.TransformPoint(p)
	return q.X, q.Y
}

// toLogical maps a drawing position to a logical Point.
func toLogical(axes Axes, p Point) Point {
	x, y := axes.PointToCoords(p)
	return Pt(x, y)
}

// LogicalDistance returns the Euclidean distance between two drawing
// positions measured in logical axis coordinates.
func LogicalDistance(axes Axes, p, q Point) float64 {
	return toLogical(axes, p).Distance(toLogical(axes, q))
}
