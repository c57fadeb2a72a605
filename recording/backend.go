package recording

import "io"

// Backend is the interface that all playback backends must implement.
// Backends receive recorded frames and translate them to their output
// format.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return New(DefaultOptions())
//	    })
//	}
type Backend interface {
	// Begin is called once before the first frame with the number of
	// frames that follow.
	Begin(frames int) error

	// DrawFrame renders one frame.
	DrawFrame(f Frame) error

	// End finalizes the output. Output methods are valid afterwards.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content. Only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content. Only valid after End.
	SaveToFile(path string) error
}
