package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the instrumentation's Prometheus registry and, when an address
// is configured, the HTTP server exposing it.
type Metrics struct {
	// Server is the HTTP server for the /metrics endpoint. Nil when the
	// endpoint was disabled through configuration.
	Server *http.Server

	// Registry is the Prometheus registry holding every metric created
	// through this instance.
	Registry *prometheus.Registry

	// wrappedRegisterer applies the constant service label during
	// registration.
	wrappedRegisterer prometheus.Registerer
}

// NewMetrics builds the registry and, unless the configured address is an
// empty string, the HTTP server for it. The server is not started here; the
// Fx lifecycle, or the embedding application, owns ListenAndServe.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		wrappedRegisterer: prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		),
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		m.Server = &http.Server{
			Addr:    addr,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}
	}

	return m
}
