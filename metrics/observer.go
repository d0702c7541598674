package metrics

import (
	"github.com/aalemi-dev/hooktrace/observability"
)

// rootComponentLabel stands in for the root instance, which has no resolved
// component name of its own.
const rootComponentLabel = "root"

// TransitionObserver implements observability.Observer on top of a metrics
// registry. Plug it into the engine to count handled lifecycle transitions
// and span activity.
type TransitionObserver struct {
	transitions   Counter
	spansStarted  Counter
	spansFinished Counter
	openSpans     Gauge
}

// NewTransitionObserver creates the observer and registers its metrics.
func NewTransitionObserver(m MetricsCollector) *TransitionObserver {
	return &TransitionObserver{
		transitions: m.CreateCounter(
			"hooktrace_lifecycle_transitions_total",
			"Handled lifecycle hook firings, by component, operation and phase.",
			[]string{"component", "operation", "phase"},
		),
		spansStarted: m.CreateCounter(
			"hooktrace_spans_started_total",
			"Lifecycle spans opened, by span kind.",
			[]string{"kind"},
		),
		spansFinished: m.CreateCounter(
			"hooktrace_spans_finished_total",
			"Lifecycle spans finished or scheduled to finish, by span kind.",
			[]string{"kind"},
		),
		openSpans: m.CreateGauge(
			"hooktrace_open_child_spans",
			"Child spans currently open.",
			nil,
		),
	}
}

// ObserveTransition records one handled lifecycle transition.
func (o *TransitionObserver) ObserveTransition(t observability.Transition) {
	name := t.Component
	kind := "child"
	if t.Root {
		name = rootComponentLabel
		kind = "root"
	}

	o.transitions.WithLabelValues(name, string(t.Operation), t.Phase.String()).Inc()

	if t.SpanStarted {
		o.spansStarted.WithLabelValues(kind).Inc()
		if !t.Root {
			o.openSpans.Inc()
		}
	}
	if t.SpanFinished {
		o.spansFinished.WithLabelValues(kind).Inc()
		if !t.Root {
			o.openSpans.Dec()
		}
	}
}
