package euclid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// RecomputeFunc recomputes one entity's cached state from its inputs'
// current cached state.
type RecomputeFunc func() error

// ScheduleOrder permutes the registered IDs before a tick. It must return a
// permutation of ids and may reorder ids in place.
type ScheduleOrder func(ids []ID) []ID

// OrderRegistration runs entities in the order they were registered.
func OrderRegistration(ids []ID) []ID { return ids }

// OrderReverse runs entities in reverse registration order, so every
// dependency is read before it updates.
func OrderReverse(ids []ID) []ID {
	slices.Reverse(ids)
	return ids
}

// OrderShuffled returns an order that shuffles the IDs every tick with a
// deterministic generator seeded by seed.
func OrderShuffled(seed uint64) ScheduleOrder {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(ids []ID) []ID {
		rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		return ids
	}
}

// Scheduler invokes every registered recompute exactly once per tick.
// It is not safe for concurrent use.
type Scheduler struct {
	order ScheduleOrder
	ids   []ID
	fns   map[ID]RecomputeFunc
	ticks uint64
}

// NewScheduler creates a scheduler with the given order.
// A nil order means OrderRegistration.
func NewScheduler(order ScheduleOrder) *Scheduler {
	if order == nil {
		order = OrderRegistration
	}
	return &Scheduler{
		order: order,
		fns:   make(map[ID]RecomputeFunc),
	}
}

// Register adds fn as the recompute for id. Registering an ID again
// replaces its function and keeps its position.
func (s *Scheduler) Register(id ID, fn RecomputeFunc) {
	if fn == nil {
		panic("euclid: Register fn is nil")
	}
	if _, ok := s.fns[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.fns[id] = fn
}

// Deregister removes id. It reports whether id was registered.
func (s *Scheduler) Deregister(id ID) bool {
	if _, ok := s.fns[id]; !ok {
		return false
	}
	delete(s.fns, id)
	s.ids = slices.DeleteFunc(s.ids, func(x ID) bool { return x == id })
	return true
}

// IsRegistered reports whether id has a recompute registered.
func (s *Scheduler) IsRegistered(id ID) bool {
	_, ok := s.fns[id]
	return ok
}

// Len returns the number of registered entities.
func (s *Scheduler) Len() int { return len(s.ids) }

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Tick runs one recompute pass. A failing recompute does not stop the pass;
// every failure is returned joined, each prefixed with its entity ID.
func (s *Scheduler) Tick() error {
	ids := s.order(slices.Clone(s.ids))

	var errs []error
	for _, id := range ids {
		fn, ok := s.fns[id]
		if !ok {
			continue
		}
		if err := fn(); err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", id, err))
		}
	}
	s.ticks++
	return errors.Join(errs...)
}
