package ecs

// Store is a sparse-set storage for one component type, keyed by entity
// handle. The sparse index is addressed by entity ID and each dense entry
// remembers the full handle, so a lookup through a stale generation misses
// instead of reading a reused slot's component.
type Store[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

// Has reports whether e currently owns a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[e.ID-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

// Get returns e's component, or nil when e has none. The pointer stays valid
// until the component is removed.
func (s *Store[T]) Get(e Entity) *T {
	if !s.Has(e) {
		return nil
	}
	return s.values[s.sparse[e.ID-1]]
}

// Set inserts or replaces e's component. Setting under an ID whose slot holds
// a stale generation replaces the stale entry.
func (s *Store[T]) Set(e Entity, v *T) {
	if s == nil || e.ID <= 0 || v == nil {
		return
	}
	for e.ID-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	idx := s.sparse[e.ID-1]
	if idx >= 0 && idx < len(s.dense) && s.dense[idx].ID == e.ID {
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[e.ID-1] = len(s.dense) - 1
}

// Remove deletes e's component if present.
func (s *Store[T]) Remove(e Entity) {
	if !s.Has(e) {
		return
	}
	idx := s.sparse[e.ID-1]
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.ID-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.ID-1] = -1
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
