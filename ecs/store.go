package ecs

// Store is a cache-friendly sparse-set storage for one component type keyed
// by entity ID. Values are stored behind pointers so references handed out by
// Get stay valid across inserts.
type Store[T any] struct {
	denseEntities []int
	denseValues   []*T
	sparse        []int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Has reports whether the entity id exists in the store.
func (s *Store[T]) Has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

// Get returns the component for id, or nil.
func (s *Store[T]) Get(id int) *T {
	if !s.Has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

// Set inserts or replaces the component for id.
func (s *Store[T]) Set(id int, v *T) {
	if s == nil || id <= 0 || v == nil {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for id if present.
func (s *Store[T]) Remove(id int) bool {
	if !s.Has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

// Entities returns the dense entity id list. The slice is owned by the store;
// callers iterating while removing should copy it first.
func (s *Store[T]) Entities() []int {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Len returns the number of stored components.
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// ForEach calls fn for every (id, component) pair.
func (s *Store[T]) ForEach(fn func(id int, v *T)) {
	if s == nil || fn == nil {
		return
	}
	for i, id := range s.denseEntities {
		fn(id, s.denseValues[i])
	}
}

// First returns an arbitrary stored entry, used for singleton components.
func (s *Store[T]) First() (int, *T, bool) {
	if s == nil || len(s.denseEntities) == 0 {
		return 0, nil, false
	}
	return s.denseEntities[0], s.denseValues[0], true
}
