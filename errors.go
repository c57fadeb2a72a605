package euclid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the euclid package.
var (
	// ErrDegenerateConstruction is returned when three points are collinear
	// and a circumcenter is required.
	ErrDegenerateConstruction = errors.New("euclid: degenerate construction")

	// ErrTypeMismatch is returned when an entity of the wrong kind is passed.
	ErrTypeMismatch = errors.New("euclid: entity type mismatch")

	// ErrUnimplemented is returned by FindIntersections unless the scene was
	// created with WithIntersections.
	ErrUnimplemented = errors.New("euclid: capability not implemented")

	// ErrUnknownEntity is returned for IDs that do not belong to the scene.
	ErrUnknownEntity = errors.New("euclid: unknown entity")

	// ErrNegativeRadius is returned when a circle radius value is negative.
	ErrNegativeRadius = errors.New("euclid: negative radius")

	// ErrNumericDomain is returned when a derived scalar function fails or
	// produces a non-finite value.
	ErrNumericDomain = errors.New("euclid: numeric domain error")

	// ErrEmptyPolygon is returned when a polygon is built from no points.
	ErrEmptyPolygon = errors.New("euclid: polygon needs at least one point")

	// ErrInvalidAxes is returned for axis configurations that cannot be inverted.
	ErrInvalidAxes = errors.New("euclid: invalid axes configuration")
)

// DegenerateConstructionError reports three collinear points, in logical
// coordinates.
type DegenerateConstructionError struct {
	Points [3]Point
}

func (e *DegenerateConstructionError) Error() string {
	return fmt.Sprintf("euclid: degenerate construction: points %v, %v, %v are collinear",
		e.Points[0], e.Points[1], e.Points[2])
}

// Is reports whether target is ErrDegenerateConstruction.
func (e *DegenerateConstructionError) Is(target error) bool {
	return target == ErrDegenerateConstruction
}

// TypeMismatchError is returned when an entity handle has the wrong kind.
type TypeMismatchError struct {
	ID   ID
	Want EntityKind
	Got  EntityKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("euclid: entity %d is a %s, want %s", e.ID, e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
