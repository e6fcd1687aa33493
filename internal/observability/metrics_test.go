package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.IncLookups("classic")
	m.IncLookups("classic")
	m.IncConstructions("classic")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("classic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Constructions.WithLabelValues("classic")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Failures.WithLabelValues("classic")))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.IncLookups("raw")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `singleton_lookups_total{variant="raw"} 1`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, "info", lvl.String())

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, "debug", lvl.String())

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
