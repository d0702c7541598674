package observability

import (
	"time"

	"github.com/aalemi-dev/hooktrace/component"
)

// Observer is the capability hooktrace exposes to its environment: it is
// notified synchronously, from the host's execution context, every time a
// tracked component instance experiences a named lifecycle transition the
// engine handled.
//
// This interface is optional; the engine works fine without an observer.
// Implementations must be cheap, they run inline with the host's lifecycle
// processing.
type Observer interface {
	// ObserveTransition is called once per handled lifecycle hook firing,
	// after the engine has updated its span state for it.
	ObserveTransition(t Transition)
}

// Transition describes one handled lifecycle hook firing and what the engine
// did about it.
type Transition struct {
	// Component is the resolved display name of the instance. Empty for root
	// firings, which are tracked on a single application-wide timeline.
	Component string

	// Operation is the instrumented lifecycle operation the firing belongs to.
	Operation component.Operation

	// Hook is the concrete hook name that fired ("beforeMount", "mounted", ...).
	Hook string

	// Phase is the begin/end classification of this firing.
	Phase component.Phase

	// Root reports whether the firing came from the tree root instance.
	Root bool

	// SpanStarted reports whether this firing opened a span.
	SpanStarted bool

	// SpanFinished reports whether this firing finished a child span, or for
	// root firings, scheduled or refreshed the idle close of the root span.
	SpanFinished bool

	// Timestamp is the engine's clock reading for the firing.
	Timestamp time.Time
}
