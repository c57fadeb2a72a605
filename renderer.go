package euclid

// Renderer receives visualization requests from a Scene. It performs no
// computation the scene relies on; the only values it supplies are the
// label offset direction and the display color of each entity.
//
// Example:
//
//	rec := recording.NewRecorder()
//	sc := euclid.NewScene(euclid.WithRenderer(rec))
type Renderer interface {
	// Create is called once when an entity is constructed.
	Create(s Snapshot)

	// Show is called when a constructed entity becomes visible.
	Show(id ID)

	// Draw is called once per tick for every visible entity, after the
	// recompute pass.
	Draw(s Snapshot)

	// LabelDirection returns the unit direction labels are offset in.
	LabelDirection() Point

	// Color returns the display color of an entity.
	Color(id ID) RGBA
}

// FrameRenderer is implemented by renderers that want to know where a tick
// starts and ends. Scene.Tick calls BeginFrame before the first Draw and
// EndFrame after the last one.
type FrameRenderer interface {
	BeginFrame(tick uint64)
	EndFrame(tick uint64)
}

// NopRenderer draws nothing. Labels go to the right, every entity is white.
type NopRenderer struct{}

func (NopRenderer) Create(Snapshot)       {}
func (NopRenderer) Show(ID)               {}
func (NopRenderer) Draw(Snapshot)         {}
func (NopRenderer) LabelDirection() Point { return Right }
func (NopRenderer) Color(ID) RGBA         { return White }
