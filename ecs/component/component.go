package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is a typed key into a world's stores. Kinds minted
// separately for the same Go type address separate stores, which lets tests
// build throwaway kinds without touching the registered ones.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String names the kind for logs and errors, e.g. "component.Health#3".
func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "<invalid kind>"
	}
	return fmt.Sprintf("%s#%d", k.name, k.id)
}

// ComponentHandle is a package-level registration such as HealthComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
