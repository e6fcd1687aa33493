package registry

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/kenelite/go-singleton/internal/observability"
	"github.com/kenelite/go-singleton/internal/singleton"
)

var ErrUnknownVariant = errors.New("unknown singleton variant")

type Key string

type definition struct {
	key   Key
	label string
	build Builder
}

// Compile-time table of built-in variants, in output order.
var definitions []definition

// Register adds a built-in variant. It panics on a duplicate key and is meant
// to be called from init.
func Register(key Key, label string, b Builder) {
	for _, d := range definitions {
		if d.key == key {
			panic(fmt.Sprintf("registry: variant %q registered twice", key))
		}
	}
	definitions = append(definitions, definition{key: key, label: label, build: b})
}

type entry struct {
	label   string
	variant Variant
}

// Registry owns one holder per variant. Instances live as long as the
// Registry does; there is no teardown.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	order   []Key
	extra   []definition
	types   *singleton.TypeRegistry
	logger  *observability.Logger
	metrics *observability.Metrics
}

type Option func(*Registry)

func WithLogger(l *observability.Logger) Option { return func(r *Registry) { r.logger = l } }

func WithMetrics(m *observability.Metrics) Option { return func(r *Registry) { r.metrics = m } }

// WithVariant adds a variant to this registry only, after the built-ins.
func WithVariant(key Key, label string, b Builder) Option {
	return func(r *Registry) {
		r.extra = append(r.extra, definition{key: key, label: label, build: b})
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[Key]*entry),
		types:   singleton.NewTypeRegistry(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = observability.NewNop()
	}
	if r.metrics == nil {
		r.metrics = observability.NewMetrics()
	}
	for _, d := range append(append([]definition{}, definitions...), r.extra...) {
		if _, dup := r.entries[d.key]; dup {
			panic(fmt.Sprintf("registry: variant %q registered twice", d.key))
		}
		r.entries[d.key] = &entry{label: d.label, variant: d.build(r, d.key)}
		r.order = append(r.order, d.key)
	}
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Init creates the process-wide registry with opts. Only the first call
// (Init or Default) configures it; later options are ignored.
func Init(opts ...Option) *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(opts...)
	})
	return defaultRegistry
}

// Default returns the process-wide registry, creating it on first access.
func Default() *Registry { return Init() }

// Get returns the instance for key, constructing it on first request.
func (r *Registry) Get(key Key) (Instance, error) {
	e, err := r.lookup(key)
	if err != nil {
		return nil, err
	}
	r.metrics.IncLookups(string(key))
	r.logger.Debugw("singleton lookup", "variant", key, "state", e.variant.State().String())
	inst, err := e.variant.Resolve()
	if err != nil {
		return nil, errors.Wrapf(err, "construct %s", key)
	}
	return inst, nil
}

func (r *Registry) lookup(key Key) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "%q", key)
	}
	return e, nil
}

func (r *Registry) Label(key Key) string {
	e, err := r.lookup(key)
	if err != nil {
		return string(key)
	}
	return e.label
}

// Keys returns variant keys in registration order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Key(nil), r.order...)
}

func (r *Registry) Types() *singleton.TypeRegistry { return r.types }

func (r *Registry) Metrics() *observability.Metrics { return r.metrics }
