// Package observability defines the notification surface hooktrace exposes to
// the application embedding it.
//
// # Overview
//
// The span lifecycle engine converts component lifecycle hook firings into
// tracing spans. Applications often want a second signal next to the spans
// themselves: counters, debug logs, or assertions about which components are
// being tracked. The Observer interface carries that signal without coupling
// the engine to any particular metrics or logging backend.
//
// # Design
//
//  1. Optional: the engine uses NoOpObserver when nothing is configured.
//  2. Synchronous: ObserveTransition runs inline with the lifecycle firing,
//     so implementations must not block.
//  3. Unified: one Transition struct describes root and child activity alike.
//
// # Usage
//
// Implement the interface and hand it to the engine:
//
//	type countingObserver struct {
//		transitions metrics.Counter
//	}
//
//	func (o *countingObserver) ObserveTransition(t observability.Transition) {
//		o.transitions.WithLabelValues(t.Component, string(t.Operation), t.Phase.String()).Inc()
//	}
//
// The metrics package ships a prometheus-backed implementation,
// metrics.NewTransitionObserver.
//
// # Thread safety
//
// The engine invokes the observer from the host's single lifecycle execution
// context, never concurrently with itself. Implementations shared with other
// goroutines must still synchronize their own state.
package observability
