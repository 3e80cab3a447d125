package ecs

func storeFor[T any](w *World, kind ComponentKind[T], create bool) *SparseSet[T] {
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := &SparseSet[T]{}
		w.stores[kind.ID()] = set
		return set
	}
	return s.(*SparseSet[T])
}

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind ComponentKind[T], value T) error {
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	storeFor(w, kind, true).Set(e.id(), value)
	return nil
}

// Get returns a pointer to e's component of the given kind. Mutating through
// the pointer updates the stored component in place.
func Get[T any](w *World, e Entity, kind ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.Get(e.id())
}

// MustGet is Get for components a system's query already guaranteed.
func MustGet[T any](w *World, e Entity, kind ComponentKind[T]) *T {
	v, ok := Get(w, e, kind)
	if !ok {
		panic("ecs: missing component on queried entity " + e.String())
	}
	return v
}

func Has[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := storeFor(w, kind, false)
	if s == nil || !s.has(e.id()) {
		return false
	}
	s.remove(e.id())
	return true
}
