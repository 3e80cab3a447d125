package ecs

// componentStore is the type-erased view the World keeps of every SparseSet.
type componentStore interface {
	has(id entityID) bool
	remove(id entityID)
	ids() []entityID
	len() int
}

// SparseSet is a cache-friendly storage for components keyed by entity id.
// Values are kept densely packed; pointers returned by Get stay valid until
// the next Set of a new id or Remove on the same set.
type SparseSet[T any] struct {
	denseIDs []entityID
	dense    []T
	sparse   []int
}

func (s *SparseSet[T]) has(id entityID) bool {
	if id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

// Get returns a pointer to the component for id.
func (s *SparseSet[T]) Get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return &s.dense[s.sparse[id-1]], true
}

// Set inserts or updates a component for id.
func (s *SparseSet[T]) Set(id entityID, v T) {
	if id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.dense[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.dense = append(s.dense, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

func (s *SparseSet[T]) remove(id entityID) {
	if !s.has(id) {
		return
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.dense[idx] = s.dense[last]
	s.sparse[lastID-1] = idx

	var zero T
	s.dense[last] = zero
	s.denseIDs = s.denseIDs[:last]
	s.dense = s.dense[:last]
	s.sparse[id-1] = -1
}

func (s *SparseSet[T]) ids() []entityID {
	return s.denseIDs
}

func (s *SparseSet[T]) len() int {
	return len(s.denseIDs)
}
