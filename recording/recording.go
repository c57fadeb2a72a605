package recording

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/euclid"
)

// Recording is an immutable sequence of recorded commands and frames.
type Recording struct {
	commands []Command
	frames   []Frame
}

// Commands returns the recorded commands in order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Frames returns the recorded frames in tick order.
func (r *Recording) Frames() []Frame {
	return r.frames
}

// Filter returns the commands of the given type.
func (r *Recording) Filter(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// History returns every drawn snapshot of one entity, in frame order.
func (r *Recording) History(id euclid.ID) []euclid.Snapshot {
	var out []euclid.Snapshot
	for _, f := range r.frames {
		for _, s := range f.Shapes {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out
}

// Playback replays every frame to b between Begin and End.
func (r *Recording) Playback(b Backend) error {
	if err := b.Begin(len(r.frames)); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	for _, f := range r.frames {
		if err := b.DrawFrame(f); err != nil {
			return fmt.Errorf("recording: frame %d: %w", f.Tick, err)
		}
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	euclid.Logger().Debug("recording: playback done",
		slog.Int("frames", len(r.frames)),
		slog.Int("commands", len(r.commands)))
	return nil
}
