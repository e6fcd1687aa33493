package singleton

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type config struct{ name string }

func TestTypeRegistryMemoizesByType(t *testing.T) {
	r := NewTypeRegistry()

	m1, err := Of(r, NewMeta)
	require.NoError(t, err)
	m2, err := Of(r, NewMeta)
	require.NoError(t, err)
	assert.Same(t, m1, m2)
	assert.Equal(t, MetaclassPayload, m1.String())

	// a second type needs no extra code
	c1, err := Of(r, func() (*config, error) { return &config{name: "a"}, nil })
	require.NoError(t, err)
	c2, err := Of(r, func() (*config, error) { return &config{name: "b"}, nil })
	require.NoError(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, "a", c2.name)

	assert.Equal(t, []string{"*singleton.Meta", "*singleton.config"}, r.Types())
}

func TestTypeRegistriesAreIsolated(t *testing.T) {
	a, err := Of(NewTypeRegistry(), NewMeta)
	require.NoError(t, err)
	b, err := Of(NewTypeRegistry(), NewMeta)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestTypeRegistryConcurrent(t *testing.T) {
	const callers = 32
	r := NewTypeRegistry()
	var calls atomic.Int32
	got := make([]*Meta, callers)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			m, err := Of(r, func() (*Meta, error) {
				calls.Add(1)
				return NewMeta()
			})
			got[i] = m
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, 1, calls.Load())
	for i := range got {
		assert.Same(t, got[0], got[i])
	}
}

func TestPeek(t *testing.T) {
	r := NewTypeRegistry()
	_, ok := Peek[*Meta](r)
	assert.False(t, ok)

	_, err := Of(r, NewMeta)
	require.NoError(t, err)
	h, ok := Peek[*Meta](r)
	require.True(t, ok)
	assert.Equal(t, Initialized, h.State())
	assert.EqualValues(t, 1, h.Constructions())
}
