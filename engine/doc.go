// Package engine implements the span lifecycle engine: the state machine that
// turns paired begin/end lifecycle hook firings into tracing spans.
//
// # Model
//
// The engine keeps two kinds of state:
//
//   - One root span per engine, not per component. Every instrumented firing
//     on the tree root collapses onto a single "application render" timeline.
//   - One span slot per (instance, operation) pair for non-root instances,
//     holding the at-most-one open child span for that pair.
//
// # Phase rules
//
// Injected hook pairs report PhaseBefore on their first firing and PhaseAfter
// on their second (see the component package). Spans open on PhaseAfter, never
// on PhaseBefore: the interval between the instrumentation install and the
// first begin hook is framework setup noise, not a meaningful span, so the
// measured window runs from the first end firing to the next firing of the
// pair. A firing that finds a span already open closes it; it does not open a
// new one in the same call. A stale firing that finds nothing open does
// nothing, mirroring the host's documented tolerance for out-of-order hook
// insertion.
//
// # Idle-close debouncing
//
// The host never says "rendering is finished". Opening the root span arms one
// idle timer, and every completion event afterwards, root or child,
// reschedules it. When the timer expires without being superseded, the root
// span finishes with the timestamp captured at the last reschedule, not the
// expiry time. Root and child handlers share this single debounce slot rather
// than owning separate timers.
//
// # Silent skips
//
// No active trace, an untracked component name, or TrackComponents disabled
// all mean the firing is ignored without creating state. Telemetry degrades to
// incomplete; the host application is never disturbed.
//
// # Setup detection
//
// Attach arms a one-shot timer. If no instance install has happened when it
// fires, the engine logs a warning about initialization order, the one failure
// mode that is otherwise completely silent.
package engine
