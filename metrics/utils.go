package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a counter metric and registers it to the registry.
//
// Example:
//
//	counter := m.CreateCounter("lifecycle_transitions_total", "Handled lifecycle transitions", []string{"operation", "phase"})
//	counter.WithLabelValues("mount", "after").Inc()
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: name, Help: help},
		labels,
	)
	m.wrappedRegisterer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateGauge creates a gauge metric and registers it to the registry.
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	vec := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: name, Help: help},
		labels,
	)
	m.wrappedRegisterer.MustRegister(vec)
	return &gaugeVec{vec: vec}
}

// CreateHistogram creates a histogram metric with the given buckets and
// registers it to the registry.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets},
		labels,
	)
	m.wrappedRegisterer.MustRegister(vec)
	return &histogramVec{vec: vec}
}
