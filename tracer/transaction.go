package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// StartTransaction opens a top-level span for one navigation or render cycle
// and records it as the active trace. A transaction already in flight is ended
// first; there is at most one active transaction per client.
//
// The returned context carries the transaction span and parents every span
// started from it.
func (t *TracerClient) StartTransaction(ctx context.Context, name string) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	t.mu.Lock()
	prev := t.activeSpan
	t.mu.Unlock()
	if prev != nil {
		t.EndTransaction()
	}

	txCtx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))

	t.mu.Lock()
	t.activeCtx = txCtx
	t.activeSpan = span
	t.mu.Unlock()

	return txCtx, span
}

// EndTransaction finishes the active transaction span and clears the active
// trace slot. A no-op when no transaction is in flight.
func (t *TracerClient) EndTransaction() {
	t.mu.Lock()
	span := t.activeSpan
	t.activeCtx = nil
	t.activeSpan = nil
	t.mu.Unlock()

	if span != nil {
		span.End()
	}
}

// ActiveTrace implements Source. It returns the context of the transaction in
// flight, or ok=false when there is none.
func (t *TracerClient) ActiveTrace() (context.Context, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeCtx == nil {
		return nil, false
	}
	return t.activeCtx, true
}
