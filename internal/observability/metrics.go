package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry      *prometheus.Registry
	Lookups       *prometheus.CounterVec
	Constructions *prometheus.CounterVec
	Failures      *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "singleton_lookups_total",
			Help: "Instance requests per variant.",
		}, []string{"variant"}),
		Constructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "singleton_constructions_total",
			Help: "Instances constructed per variant.",
		}, []string{"variant"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "singleton_construction_failures_total",
			Help: "Failed construction attempts per variant.",
		}, []string{"variant"}),
	}
	m.registry.MustRegister(m.Lookups, m.Constructions, m.Failures)
	return m
}

func (m *Metrics) IncLookups(variant string) { m.Lookups.WithLabelValues(variant).Inc() }
func (m *Metrics) IncConstructions(variant string) { m.Constructions.WithLabelValues(variant).Inc() }
func (m *Metrics) IncFailures(variant string) { m.Failures.WithLabelValues(variant).Inc() }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
