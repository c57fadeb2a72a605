package euclid

// DegeneracyPolicy decides what a recompute does when its inputs move into a
// configuration it cannot evaluate (collinear circumcenter points, negative
// radius).
type DegeneracyPolicy uint8

const (
	// HoldLastValid keeps the previous cached state and logs a warning.
	HoldLastValid DegeneracyPolicy = iota

	// FailFast returns the error from the recompute.
	FailFast
)

// String returns the policy name.
func (p DegeneracyPolicy) String() string {
	if p == FailFast {
		return "fail-fast"
	}
	return "hold-last-valid"
}

// LabelMeasurer measures label text in drawing units.
type LabelMeasurer interface {
	Measure(text string) (width, height float64)
}

// SceneOption configures a Scene during creation.
//
// Example:
//
//	sc := euclid.NewScene(
//	    euclid.WithRenderer(rec),
//	    euclid.WithDegeneracyPolicy(euclid.FailFast),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	axes          Axes
	renderer      Renderer
	policy        DegeneracyPolicy
	order         ScheduleOrder
	measurer      LabelMeasurer
	intersections bool
}

// defaultOptions returns the default scene options. The measurer is left
// nil and filled in by NewScene so the font is only parsed when needed.
func defaultOptions() sceneOptions {
	return sceneOptions{
		renderer: NopRenderer{},
		policy:   HoldLastValid,
		order:    OrderRegistration,
	}
}

// WithAxes sets the logical-to-drawing mapping. Defaults to
// MustLinearAxes(DefaultAxesConfig()).
func WithAxes(a Axes) SceneOption {
	return func(o *sceneOptions) {
		o.axes = a
	}
}

// WithRenderer sets the rendering collaborator. Defaults to NopRenderer.
func WithRenderer(r Renderer) SceneOption {
	return func(o *sceneOptions) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithDegeneracyPolicy sets the per-tick degeneracy policy.
// Construction-time degeneracy always fails regardless of policy.
func WithDegeneracyPolicy(p DegeneracyPolicy) SceneOption {
	return func(o *sceneOptions) {
		o.policy = p
	}
}

// WithScheduleOrder sets the order of recomputes within a tick.
func WithScheduleOrder(order ScheduleOrder) SceneOption {
	return func(o *sceneOptions) {
		if order != nil {
			o.order = order
		}
	}
}

// WithLabelMeasurer sets how label extents are measured. Defaults to a
// text.Measurer using the Go Regular font at DefaultLabelSize.
func WithLabelMeasurer(m LabelMeasurer) SceneOption {
	return func(o *sceneOptions) {
		o.measurer = m
	}
}

// WithIntersections enables FindIntersections. Without it FindIntersections
// returns ErrUnimplemented.
func WithIntersections() SceneOption {
	return func(o *sceneOptions) {
		o.intersections = true
	}
}

// PointOption configures a point during construction.
type PointOption func(*pointOptions)

type pointOptions struct {
	label  string
	hidden bool
}

// WithLabel attaches a text label to the point.
func WithLabel(text string) PointOption {
	return func(o *pointOptions) {
		o.label = text
	}
}

// Hidden constructs the point without showing it.
func Hidden() PointOption {
	return func(o *pointOptions) {
		o.hidden = true
	}
}
