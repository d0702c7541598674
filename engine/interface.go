package engine

import "context"

// TraceSource is the process-wide active-trace lookup the engine consumes.
// The tracer package's *TracerClient implements it; tests substitute fakes.
type TraceSource interface {
	// ActiveTrace returns a context carrying the currently active top-level
	// trace span, or ok=false when none is in flight. A missing trace is not
	// an error; the engine silently creates no spans.
	ActiveTrace() (ctx context.Context, ok bool)
}
