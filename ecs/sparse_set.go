package ecs

// SparseSet stores one component value per entity slot. Values are kept
// densely packed for iteration; sparse maps a slot id to its dense index + 1.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

// Has reports whether the slot has a value.
func (s *SparseSet) Has(id entityID) bool {
	if s == nil || int(id) >= len(s.sparse) {
		return false
	}
	return s.sparse[id] > 0
}

// Get returns the value stored for the slot along with the handle it was
// stored under.
func (s *SparseSet) Get(id entityID) (Entity, any, bool) {
	if !s.Has(id) {
		return 0, nil, false
	}
	idx := s.sparse[id] - 1
	return s.dense[idx], s.values[idx], true
}

// Set inserts or replaces the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	id := e.id()
	if int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, make([]int, int(id)+1-len(s.sparse))...)
	}
	if idx := s.sparse[id]; idx > 0 {
		s.dense[idx-1] = e
		s.values[idx-1] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense)
}

// Remove deletes the value for the slot, swapping the last value into its place.
func (s *SparseSet) Remove(id entityID) bool {
	if !s.Has(id) {
		return false
	}
	idx := s.sparse[id] - 1
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()] = idx + 1

	s.dense[last] = 0
	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id] = 0
	return true
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the dense handle list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}
