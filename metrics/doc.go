// Package metrics exposes Prometheus metrics for the instrumentation itself:
// how many lifecycle transitions were handled, how many spans opened and
// closed, how errors were intercepted.
//
// A single registry backs one HTTP endpoint served with promhttp. All metrics
// carry a constant service label so multiple instrumented applications can
// share one scrape configuration. The TransitionObserver type bridges the
// engine's observer hook onto this registry; wire it in when the embedding
// application wants self-observability, leave it out when it does not.
package metrics
