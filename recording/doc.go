// Package recording captures what a euclid.Scene asks its renderer to do.
//
// A Recorder is a euclid.Renderer that stores every Create, Show and Draw
// request as a typed Command, grouped into frames (one per tick). The
// finished Recording can be replayed to any Backend, for example the raster
// backend that turns frames into PNG images.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	sc := euclid.NewScene(euclid.WithRenderer(rec))
//	// ... construct entities, set values, call sc.Tick() ...
//	r := rec.Finish()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/euclid/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//	if err != nil {
//	    // backend not registered
//	}
//	if err := r.Playback(b); err != nil {
//	    // rendering failed
//	}
//
// Backends register themselves in init(), following the database/sql
// driver pattern.
package recording
