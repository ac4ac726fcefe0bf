package ecs

import "github.com/milk9111/tailchase/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
// Handles to e held elsewhere stop resolving.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle still refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddComponent stores value as the kind component of e, replacing any
// previous value.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	s.Set(e, value)
	return nil
}

// HasComponent reports whether e currently has a kind component.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// GetComponent returns the kind component of e. A stale handle never
// resolves, even if its slot has been reused.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	s := w.store(kind)
	if s == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	owner, v, ok := s.Get(e.id())
	if !ok || owner != e {
		return nil, false
	}
	return v, true
}

// Query returns the live entities that have every listed component.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for i, s := range sets {
			if i != smallest && !s.Has(e.id()) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// Single returns the only entity that has every listed component. It fails
// when there are none or more than one.
func (w *World) Single(kinds ...component.Kind) (Entity, bool) {
	matches := w.Query(kinds...)
	if len(matches) != 1 {
		return 0, false
	}
	return matches[0], true
}

func (w *World) store(kind component.Kind) *SparseSet {
	if w == nil || kind == nil || !kind.Valid() {
		return nil
	}
	return w.stores[kind.ID()]
}
