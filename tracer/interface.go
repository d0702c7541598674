package tracer

import (
	"context"
)

// Source is the process-wide active-trace lookup the span lifecycle engine
// consumes. It answers one question: is a top-level trace in flight right now,
// and if so, which context carries its root span.
//
// This interface is implemented by the concrete *TracerClient type.
type Source interface {
	// ActiveTrace returns a context carrying the currently active top-level
	// trace span. ok is false when no transaction is in flight; callers are
	// expected to silently skip span creation in that case.
	ActiveTrace() (ctx context.Context, ok bool)
}
