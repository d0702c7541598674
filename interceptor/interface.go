package interceptor

import "time"

// Event is the metadata record attached to a captured exception.
type Event struct {
	// ComponentName is the resolved display name of the failing instance.
	// Empty when no instance was associated with the error or resolution
	// failed.
	ComponentName string

	// LifecycleHook names the lifecycle phase the error surfaced in, when the
	// host supplied one.
	LifecycleHook string

	// Props holds the instance's prop values at interception time. Only
	// populated when Config.AttachProps is set and extraction succeeded.
	Props map[string]any

	// Timestamp is the interception time.
	Timestamp time.Time
}

// Reporter is the capture pipeline the interceptor forwards exceptions to.
// The embedding application supplies the implementation; this module never
// sends anything anywhere itself.
type Reporter interface {
	// CaptureException records one application error together with its
	// metadata. Called from a scheduling turn after the one the error
	// surfaced in.
	CaptureException(err error, ev Event)
}

// Scheduler defers work to the next scheduling turn. Capture is deferred so
// that context recorded by host-internal processing later in the current turn
// still makes it into the event.
type Scheduler interface {
	Defer(fn func())
}

// goroutineScheduler is the default Scheduler: a fresh goroutine, which by
// construction runs after the current call stack returns.
type goroutineScheduler struct{}

func (goroutineScheduler) Defer(fn func()) { go fn() }
