package metrics

// MetricsCollector provides an interface for creating and registering
// application metrics. It abstracts metric operations behind small interfaces
// so no Prometheus types leak to callers.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// CreateCounter creates a counter metric and registers it.
	// Counters only ever increase; use WithLabelValues to select a label
	// combination before incrementing.
	CreateCounter(name, help string, labels []string) Counter

	// CreateGauge creates a gauge metric and registers it.
	// Gauges move in both directions, suitable for open-span counts.
	CreateGauge(name, help string, labels []string) Gauge

	// CreateHistogram creates a histogram metric with the given buckets and
	// registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram
}
