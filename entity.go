package euclid

import "fmt"

// ID addresses an entity in a Scene's arena. The zero ID is never assigned.
type ID uint32

// EntityKind is the top-level tag of an entity.
type EntityKind uint8

const (
	KindValue   EntityKind = iota + 1 // independently settable scalar
	KindDerived                       // scalar computed from other scalars
	KindPoint                         // 2D point
	KindCircle                        // circle
	KindPolygon                       // ordered vertex list
)

var entityKindNames = [...]string{
	KindValue:   "value",
	KindDerived: "derived scalar",
	KindPoint:   "point",
	KindCircle:  "circle",
	KindPolygon: "polygon",
}

// String returns the kind name.
func (k EntityKind) String() string {
	if int(k) < len(entityKindNames) && entityKindNames[k] != "" {
		return entityKindNames[k]
	}
	return fmt.Sprintf("EntityKind(%d)", k)
}

// isScalar reports whether entities of this kind carry a numeric value.
func (k EntityKind) isScalar() bool {
	return k == KindValue || k == KindDerived
}

// PointKind distinguishes how a point obtains its position.
type PointKind uint8

const (
	PointCoords        PointKind = iota + 1 // mapped from two scalars
	PointDerivedCenter                      // circumcenter of three points
)

// String returns the point kind name.
func (k PointKind) String() string {
	switch k {
	case PointCoords:
		return "coords"
	case PointDerivedCenter:
		return "derived center"
	default:
		return fmt.Sprintf("PointKind(%d)", k)
	}
}

// CircleKind records how a circle was constructed.
type CircleKind uint8

const (
	CircleCenterRadius CircleKind = iota + 1 // center point and radius scalar
	CircleCenterPoint                        // center point and a point on the circle
	CirclePoints                             // through three points
)

// String returns the circle kind name.
func (k CircleKind) String() string {
	switch k {
	case CircleCenterRadius:
		return "center-radius"
	case CircleCenterPoint:
		return "center-point"
	case CirclePoints:
		return "points"
	default:
		return fmt.Sprintf("CircleKind(%d)", k)
	}
}

// entity is a tagged union over every entity kind. Only the fields that
// belong to kind (and pointKind/circleKind) are meaningful.
type entity struct {
	id   ID
	kind EntityKind

	// Inputs, by ID. Derived scalars: function arguments. Coordinate points:
	// x, y. Derived centers: the three defining points. Circles: center and
	// radius scalar. Polygons: vertices in order.
	inputs []ID

	// Scalars.
	value float64
	fn    ScalarFunc

	// Points.
	pointKind PointKind
	pos       Point
	label     *label

	// Circles.
	circleKind CircleKind
	defining   []ID // points the circle was declared from, if any
	center     Point
	logical    float64 // radius in logical coordinates

	// Polygons.
	vertices []Point

	visible bool
}

// circleState builds the exported view of a circle entity.
func (e *entity) circleState() CircleState {
	return CircleState{
		Kind:          e.circleKind,
		Center:        e.center,
		Radius:        RadiusScale * e.logical,
		LogicalRadius: e.logical,
		CenterID:      e.inputs[0],
		RadiusID:      e.inputs[1],
		Defining:      append([]ID(nil), e.defining...),
	}
}

// snapshot copies the entity's cached state for the renderer.
func (e *entity) snapshot() Snapshot {
	s := Snapshot{ID: e.id, Kind: e.kind}
	switch e.kind {
	case KindValue, KindDerived:
		s.Value = e.value
	case KindPoint:
		s.PointKind = e.pointKind
		s.Position = e.pos
		if e.label != nil {
			l := e.label.state()
			s.Label = &l
		}
	case KindCircle:
		c := e.circleState()
		s.Circle = &c
	case KindPolygon:
		s.Vertices = append([]Point(nil), e.vertices...)
	}
	return s
}

// Snapshot is a read-only copy of an entity's cached state.
type Snapshot struct {
	ID   ID
	Kind EntityKind

	// Color is the renderer's color for the entity when the snapshot was taken.
	Color RGBA

	// Value is set for scalars.
	Value float64

	// PointKind, Position and Label are set for points.
	PointKind PointKind
	Position  Point
	Label     *LabelState

	// Circle is set for circles.
	Circle *CircleState

	// Vertices is set for polygons, in construction order.
	Vertices []Point
}

// CircleState is the cached state of a circle.
type CircleState struct {
	Kind CircleKind

	// Center is the center position in drawing coordinates.
	Center Point

	// Radius is the drawing radius, RadiusScale * LogicalRadius.
	Radius float64

	// LogicalRadius is the value of the radius scalar.
	LogicalRadius float64

	// CenterID is the center point. For CirclePoints it is the synthetic
	// circumcenter point.
	CenterID ID

	// RadiusID is the radius scalar. For CircleCenterPoint and CirclePoints
	// it is the implicit distance scalar.
	RadiusID ID

	// Defining lists the points the circle was declared from.
	Defining []ID
}
