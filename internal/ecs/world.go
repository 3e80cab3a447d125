package ecs

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[ComponentID]componentStore
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[ComponentID]componentStore)}
}

// CreateEntity allocates a new entity with no components.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its handle.
// Returns false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.count
}
