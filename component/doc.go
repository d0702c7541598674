// Package component models the host component tree that hooktrace instruments.
//
// The package is the seam between hooktrace and the host framework. It provides
// a minimal representation of the pieces the instrumentation actually needs:
//
//   - App: the application shell owning the root instance, the global component
//     registry, the single global error handler slot, and the instance-creation
//     callbacks used to install instrumentation.
//   - Instance: one live component instance with a process-unique UID, a type
//     Descriptor, a parent link, per-hook callback lists, and live props.
//   - Descriptor: the static type of a component (explicit name, legacy tag,
//     file-path hint, registered child components).
//
// # Lifecycle hooks
//
// The host framework emits named phase-transition signals ("beforeMount",
// "mounted", ...). Each instance keeps an ordered callback list per hook name;
// Instance.EmitHook fires them in order. Host code registers callbacks with
// Instance.On, which appends. Instrumentation registers with InjectPair, which
// front-inserts so instrumentation observes the transition before any host
// callback runs.
//
// # Hook pairs and phases
//
// Instrumented operations come in begin/end pairs (Operation.HookPair). InjectPair
// registers one callback with one shared execution counter on both hook lists of
// a pair. The counter is the only signal distinguishing the begin firing from the
// end firing:
//
//	first invocation  -> PhaseBefore
//	second invocation -> PhaseAfter
//	any further       -> PhaseStale
//
// PhaseStale exists so that out-of-order or repeated firings are an explicit,
// testable state rather than counter overflow.
//
// # Concurrency
//
// The host framework emits lifecycle events from a single logical execution
// context, one at a time. App registration methods are safe for concurrent use;
// Instance hook lists and props are not, matching the host's single-emitter
// model.
package component
