package euclid

import "fmt"

// ScalarFunc computes a derived scalar from its inputs' values, in input
// order.
type ScalarFunc func(in ...float64) (float64, error)

// Pure adapts a function that cannot fail into a ScalarFunc.
// A non-finite result is still reported as ErrNumericDomain by the scene.
func Pure(f func(in ...float64) float64) ScalarFunc {
	return func(in ...float64) (float64, error) {
		return f(in...), nil
	}
}

// NewValue creates an independently settable scalar. It panics if v is NaN
// or infinite.
func (s *Scene) NewValue(v float64) ID {
	if !isFinite(v) {
		panic(fmt.Sprintf("euclid: NewValue of non-finite value %v", v))
	}
	e := &entity{kind: KindValue, value: v}
	s.add(e)
	s.register(e, false)
	return e.id
}

// SetValue changes a value. Dependents observe it on their next recompute.
// NaN and infinities are rejected with ErrNumericDomain.
func (s *Scene) SetValue(id ID, v float64) error {
	e, err := s.expect(id, KindValue)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return fmt.Errorf("%w: value %v for entity %d", ErrNumericDomain, v, id)
	}
	e.value = v
	return nil
}

// Value returns the cached value of a value or derived scalar.
func (s *Scene) Value(id ID) (float64, error) {
	e, err := s.expectScalar(id)
	if err != nil {
		return 0, err
	}
	return e.value, nil
}

// Derive creates a scalar computed from inputs by fn. fn is evaluated once
// immediately; if that fails, no entity is created.
//
// Inputs are scalars or points. A scalar contributes its value to fn's
// arguments, a point contributes its logical x and y.
func (s *Scene) Derive(fn ScalarFunc, inputs ...ID) (ID, error) {
	if fn == nil {
		panic("euclid: Derive fn is nil")
	}
	for _, id := range inputs {
		e, err := s.lookup(id)
		if err != nil {
			return 0, err
		}
		if !e.kind.isScalar() && e.kind != KindPoint {
			return 0, &TypeMismatchError{ID: id, Want: KindValue, Got: e.kind}
		}
	}

	e := &entity{kind: KindDerived, fn: fn, inputs: append([]ID(nil), inputs...)}
	v, err := s.evalDerived(e)
	if err != nil {
		return 0, err
	}
	e.value = v
	s.add(e)
	s.register(e, false)
	return e.id, nil
}

// evalDerived applies fn to the inputs' current cached values.
func (s *Scene) evalDerived(e *entity) (float64, error) {
	args := make([]float64, 0, len(e.inputs))
	for _, id := range e.inputs {
		in := s.entities[id-1]
		if in.kind == KindPoint {
			x, y := s.axes.PointToCoords(in.pos)
			args = append(args, x, y)
			continue
		}
		args = append(args, in.value)
	}
	v, err := e.fn(args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNumericDomain, err)
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: result %v for inputs %v", ErrNumericDomain, v, args)
	}
	return v, nil
}

// recomputeDerived leaves the cached value untouched on failure.
func (s *Scene) recomputeDerived(e *entity) error {
	v, err := s.evalDerived(e)
	if err != nil {
		return err
	}
	e.value = v
	return nil
}
