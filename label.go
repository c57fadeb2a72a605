package euclid

// Label placement constants, in drawing units.
const (
	// DefaultLabelSize is the em size of label text.
	DefaultLabelSize = 0.4

	// DotRadius is the drawn radius of a point.
	DotRadius = 0.08

	// LabelBuff is the gap between a point's edge and its label.
	LabelBuff = 0.25
)

// LabelState is the cached state of a point's label.
type LabelState struct {
	Text string

	// Center is the label's center in drawing coordinates.
	Center Point

	// Width and Height are the measured extent in drawing units.
	Width, Height float64

	// Color is the owning point's color at the last recompute.
	Color RGBA
}

// label is owned by exactly one point entity.
type label struct {
	text          string
	width, height float64
	center        Point
	color         RGBA
}

func newLabel(text string, m LabelMeasurer) *label {
	w, h := m.Measure(text)
	return &label{text: text, width: w, height: h}
}

func (l *label) state() LabelState {
	return LabelState{
		Text:   l.text,
		Center: l.center,
		Width:  l.width,
		Height: l.height,
		Color:  l.color,
	}
}

// place puts the label next to the dot at pos in direction dir: the gap
// between the dot's edge and the label's near edge is LabelBuff.
func (l *label) place(pos, dir Point, c RGBA) {
	d := dir.Normalize()
	edge := pos.Add(d.Mul(DotRadius + LabelBuff))
	l.center = edge.Add(Pt(d.X*l.width/2, d.Y*l.height/2))
	l.color = c
}

// Label returns the cached label of a point.
// The second result is false if the point has no label.
func (s *Scene) Label(id ID) (LabelState, bool, error) {
	e, err := s.expect(id, KindPoint)
	if err != nil {
		return LabelState{}, false, err
	}
	if e.label == nil {
		return LabelState{}, false, nil
	}
	return e.label.state(), true, nil
}
