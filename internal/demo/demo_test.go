package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenelite/go-singleton/internal/registry"
)

func TestRunPrintsThreeLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, registry.New(), 2))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Thread-safe: Classic Singleton, Same instance: True",
		"CTypes: Singleton with ctypes, Same instance: True",
		"Metaclass: Metaclass Singleton, Same instance: True",
	}, lines)
}

func TestRunRepeatMany(t *testing.T) {
	r := registry.New()
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, r, 5))
	assert.Equal(t, 3, strings.Count(buf.String(), "Same instance: True"))

	for _, st := range r.Snapshot() {
		assert.EqualValues(t, 1, st.Constructions, st.Key)
	}
}

func TestRunRejectsSingleRequest(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Run(&buf, registry.New(), 1))
	assert.Zero(t, buf.Len())
}
