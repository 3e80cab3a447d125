package ecs

import "slices"

// Query returns every live entity that has all of the listed component kinds,
// ordered by creation slot so iteration is deterministic.
func Query(w *World, kinds ...ComponentID) []Entity {
	if len(kinds) == 0 {
		return nil
	}

	// iterate the smallest set
	var smallest componentStore
	for _, k := range kinds {
		s, ok := w.stores[k]
		if !ok || s.len() == 0 {
			return nil
		}
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}

	ids := make([]entityID, 0, smallest.len())
	for _, id := range smallest.ids() {
		matched := true
		for _, k := range kinds {
			if !w.stores[k].has(id) {
				matched = false
				break
			}
		}
		if matched {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = w.entities.entity(id)
	}
	return out
}

// Single returns the only entity matching kinds.
func Single(w *World, kinds ...ComponentID) (Entity, error) {
	matches := Query(w, kinds...)
	if len(matches) != 1 {
		return 0, ErrNotSingle
	}
	return matches[0], nil
}
