// Package euclid provides reactive euclidean constructions for Go.
//
// # Overview
//
// euclid keeps geometric state (points, circles, polygons) synchronized with
// a set of numeric parameters that change over time, for example during an
// animation. A construction is declared once; afterwards the host drives one
// recomputation pass per frame with [Scene.Tick].
//
// # Quick Start
//
//	sc := euclid.NewScene()
//
//	u := sc.NewValue(3)
//	v := sc.NewValue(2)
//	negU, _ := sc.Derive(euclid.Pure(func(in ...float64) float64 { return -in[0] }), u)
//
//	a, _ := sc.PointFromCoords(u, v, euclid.WithLabel("A"))
//	b, _ := sc.PointFromCoords(v, u, euclid.WithLabel("B"))
//	c, _ := sc.PointFromCoords(v, negU, euclid.WithLabel("C"))
//	circle, err := sc.CircleThroughPoints(a, b, c)
//	if err != nil {
//		// the three points are collinear
//	}
//
//	_ = sc.SetValue(u, -2)
//	_ = sc.Tick()
//	state, _ := sc.Circle(circle)
//
// # Entities
//
// Every entity lives in the scene's arena and is addressed by an [ID]:
//   - values: independently settable scalars ([Scene.NewValue])
//   - derived scalars: pure functions of other scalars ([Scene.Derive])
//   - points: mapped from two scalars, or synthetic circumcenters
//   - circles: center+radius, center+point, or through three points
//   - polygons: ordered vertex lists read from points
//
// A derived entity stores the IDs of its inputs and never owns them. It only
// writes its own cached state, reading the inputs' cached state as of the
// moment it runs.
//
// # Coordinate Systems
//
// Geometric formulas (distance, circumcenter) are evaluated in logical axis
// coordinates. Positions are stored in drawing coordinates, obtained through
// the scene's [Axes]. The default [LinearAxes] maps the range [-5, 5] on both
// axes onto 6 drawing units, with y increasing upward.
//
// # Scheduling
//
// [Scheduler] invokes each registered recompute exactly once per tick. The
// default order is registration order, which is a topological order because
// an entity can only be constructed after its inputs. Other orders
// ([OrderReverse], [OrderShuffled]) may lag by one tick per dependency hop.
package euclid
