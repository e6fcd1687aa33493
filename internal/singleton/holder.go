package singleton

import (
	"sync"
	"sync/atomic"
)

type State int32

const (
	Uninitialized State = iota
	Initializing
	Initialized
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Initialized:
		return "initialized"
	default:
		return "uninitialized"
	}
}

// Holder lazily constructs one T and returns it on every later call.
// The zero value is ready to use. A Holder must not be copied after first use.
type Holder[T any] struct {
	mu            sync.Mutex
	instance      atomic.Pointer[T]
	state         atomic.Int32
	constructions atomic.Int64
}

// Get returns the stored instance, calling ctor to build it if none exists yet.
// If ctor fails the holder stays Uninitialized and the next Get tries again.
func (h *Holder[T]) Get(ctor func() (T, error)) (T, error) {
	if p := h.instance.Load(); p != nil {
		return *p, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// another caller may have won the race while we waited on the lock
	if p := h.instance.Load(); p != nil {
		return *p, nil
	}

	h.state.Store(int32(Initializing))
	v, err := ctor()
	if err != nil {
		h.state.Store(int32(Uninitialized))
		var zero T
		return zero, err
	}
	h.constructions.Add(1)
	h.instance.Store(&v)
	h.state.Store(int32(Initialized))
	return v, nil
}

// Instance returns the stored instance without constructing one.
func (h *Holder[T]) Instance() (T, bool) {
	if p := h.instance.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

func (h *Holder[T]) State() State { return State(h.state.Load()) }

func (h *Holder[T]) Constructions() int64 { return h.constructions.Load() }
