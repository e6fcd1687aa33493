package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kenelite/go-singleton/internal/singleton"
)

// Instance is what a variant hands out.
type Instance interface {
	fmt.Stringer
	ID() uuid.UUID
}

// Variant resolves one kind of singleton inside a Registry.
type Variant interface {
	Resolve() (Instance, error)
	State() singleton.State
	Constructions() int64
}

// Builder creates a variant bound to r. key is the name it is registered under.
type Builder func(r *Registry, key Key) Variant

// Held builds a variant backed by its own Holder.
func Held[T Instance](ctor func() (T, error)) Builder {
	return func(r *Registry, key Key) Variant {
		return &heldVariant[T]{ctor: observed(r, key, ctor)}
	}
}

// Typed builds a variant resolved through the registry's TypeRegistry, keyed by T.
func Typed[T Instance](ctor func() (T, error)) Builder {
	return func(r *Registry, key Key) Variant {
		return &typedVariant[T]{types: r.types, ctor: observed(r, key, ctor)}
	}
}

type heldVariant[T Instance] struct {
	holder singleton.Holder[T]
	ctor   func() (T, error)
}

func (v *heldVariant[T]) Resolve() (Instance, error) {
	inst, err := v.holder.Get(v.ctor)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (v *heldVariant[T]) State() singleton.State { return v.holder.State() }

func (v *heldVariant[T]) Constructions() int64 { return v.holder.Constructions() }

type typedVariant[T Instance] struct {
	types *singleton.TypeRegistry
	ctor  func() (T, error)
}

func (v *typedVariant[T]) Resolve() (Instance, error) {
	inst, err := singleton.Of(v.types, v.ctor)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (v *typedVariant[T]) State() singleton.State {
	if h, ok := singleton.Peek[T](v.types); ok {
		return h.State()
	}
	return singleton.Uninitialized
}

func (v *typedVariant[T]) Constructions() int64 {
	if h, ok := singleton.Peek[T](v.types); ok {
		return h.Constructions()
	}
	return 0
}

// observed wraps ctor so every attempt is logged and counted. It runs under
// the holder lock, so a success is recorded exactly once per variant.
func observed[T Instance](r *Registry, key Key, ctor func() (T, error)) func() (T, error) {
	return func() (T, error) {
		inst, err := ctor()
		if err != nil {
			r.metrics.IncFailures(string(key))
			r.logger.Warnw("singleton construction failed", "variant", key, "err", err)
			return inst, err
		}
		r.metrics.IncConstructions(string(key))
		r.logger.Infow("singleton constructed", "variant", key, "id", inst.ID().String())
		return inst, nil
	}
}
