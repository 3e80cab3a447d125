package ecs

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
	ErrNotSingle            = errors.New("ecs: query did not match exactly one entity")
)

// ComponentID identifies a component kind inside a World.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is a typed key for one component type. Declare kinds once at
// package level; every call to NewComponentKind yields a distinct kind even
// for the same T, so tags can share an empty struct type if they want.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates a new component kind.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}
