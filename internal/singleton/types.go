package singleton

import (
	"reflect"
	"sort"
	"sync"
)

// TypeRegistry memoizes one instance per requested Go type. Adding a new
// singleton type needs no new code here: asking for it is enough.
type TypeRegistry struct {
	mu      sync.Mutex
	holders map[reflect.Type]any
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{holders: make(map[reflect.Type]any)}
}

// Of returns the instance of T held by r, building it with ctor on first request.
// The registry lock covers only the lookup of T's holder; construction runs
// under that holder's own lock.
func Of[T any](r *TypeRegistry, ctor func() (T, error)) (T, error) {
	return holderFor[T](r).Get(ctor)
}

// Peek returns T's holder if T has been requested before.
func Peek[T any](r *TypeRegistry) (*Holder[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.holders[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return h.(*Holder[T]), true
}

func holderFor[T any](r *TypeRegistry) *Holder[T] {
	key := reflect.TypeFor[T]()
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.holders[key]; ok {
		return h.(*Holder[T])
	}
	h := &Holder[T]{}
	r.holders[key] = h
	return h
}

// Types lists the type names that have a holder, sorted.
func (r *TypeRegistry) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.holders))
	for t := range r.holders {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}
