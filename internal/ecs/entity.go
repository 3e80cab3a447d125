// Package ecs is a small entity/component store: entities are opaque packed
// ids, components live in one sparse set per component kind, and systems run
// in a fixed order through a Scheduler.
package ecs

import "strconv"

// Entity is an opaque handle: the low 32 bits hold the slot id and the high
// 32 bits hold the slot generation.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e could refer to an entity. The zero Entity never does.
func (e Entity) Valid() bool {
	return e.id() > 0
}
