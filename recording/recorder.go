package recording

import (
	"github.com/gogpu/euclid"
)

// Recorder is a euclid.Renderer and euclid.FrameRenderer that records every
// request it receives.
//
// The Recorder also acts as the scene's style source: it answers
// LabelDirection and Color from values set with SetLabelDirection and
// SetColor.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	frames   []Frame

	current *Frame
	tick    uint64

	direction    euclid.Point
	colors       map[euclid.ID]euclid.RGBA
	defaultColor euclid.RGBA
}

var (
	_ euclid.Renderer      = (*Recorder)(nil)
	_ euclid.FrameRenderer = (*Recorder)(nil)
)

// NewRecorder creates a Recorder that places labels to the right and
// reports every entity as white.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:     make([]Command, 0, 256),
		direction:    euclid.Right,
		colors:       make(map[euclid.ID]euclid.RGBA),
		defaultColor: euclid.White,
	}
}

// SetLabelDirection sets the direction labels are offset in.
func (r *Recorder) SetLabelDirection(d euclid.Point) {
	r.direction = d
}

// SetColor sets the display color of an entity. Labels pick it up on the
// owning point's next recompute.
func (r *Recorder) SetColor(id euclid.ID, c euclid.RGBA) {
	r.colors[id] = c
}

// SetDefaultColor sets the color of entities without an explicit color.
func (r *Recorder) SetDefaultColor(c euclid.RGBA) {
	r.defaultColor = c
}

// Create implements euclid.Renderer.
func (r *Recorder) Create(s euclid.Snapshot) {
	r.commands = append(r.commands, Command{Type: CmdCreate, Frame: r.tick, ID: s.ID, Snapshot: s})
}

// Show implements euclid.Renderer.
func (r *Recorder) Show(id euclid.ID) {
	r.commands = append(r.commands, Command{Type: CmdShow, Frame: r.tick, ID: id})
}

// Draw implements euclid.Renderer.
func (r *Recorder) Draw(s euclid.Snapshot) {
	r.commands = append(r.commands, Command{Type: CmdDraw, Frame: r.tick, ID: s.ID, Snapshot: s})
	if r.current != nil {
		r.current.Shapes = append(r.current.Shapes, s)
	}
}

// LabelDirection implements euclid.Renderer.
func (r *Recorder) LabelDirection() euclid.Point {
	return r.direction
}

// Color implements euclid.Renderer.
func (r *Recorder) Color(id euclid.ID) euclid.RGBA {
	if c, ok := r.colors[id]; ok {
		return c
	}
	return r.defaultColor
}

// BeginFrame implements euclid.FrameRenderer.
func (r *Recorder) BeginFrame(tick uint64) {
	r.tick = tick
	r.current = &Frame{Tick: tick}
}

// EndFrame implements euclid.FrameRenderer.
func (r *Recorder) EndFrame(tick uint64) {
	if r.current == nil {
		return
	}
	r.frames = append(r.frames, *r.current)
	r.current = nil
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns the recording made so far. The Recorder keeps recording;
// later requests do not affect the returned Recording.
func (r *Recorder) Finish() *Recording {
	frames := make([]Frame, len(r.frames))
	for i, f := range r.frames {
		frames[i] = Frame{Tick: f.Tick, Shapes: append([]euclid.Snapshot(nil), f.Shapes...)}
	}
	return &Recording{
		commands: append([]Command(nil), r.commands...),
		frames:   frames,
	}
}
