package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/hooktrace/component"
	"github.com/aalemi-dev/hooktrace/observability"
)

// rootSpanName labels the single per-navigation render span.
const rootSpanName = "application render"

// Attribute keys set on lifecycle spans.
const (
	attrComponentName = "component.name"
	attrOperation     = "lifecycle.operation"
)

// Attach registers the engine's install hook on the app and arms the
// setup-detection timer. Every instance the app creates from this point on
// gets instrumented exactly once.
//
// A nil app is reported at warning level and ignored; the engine then simply
// never produces spans.
func (e *Engine) Attach(app *component.App) {
	if app == nil {
		e.log.Warn("no host application to instrument", nil)
		return
	}
	app.OnCreate(e.Install)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sawInstall || e.setupTimer != nil {
		return
	}
	e.setupTimer = e.clock.AfterFunc(setupDetectionDelay, func() {
		e.mu.Lock()
		saw := e.sawInstall
		e.mu.Unlock()
		if !saw {
			e.log.Warn("lifecycle hooks were not applied, check initialization order", nil, map[string]interface{}{
				"waited": setupDetectionDelay.String(),
			})
		}
	})
}

// Install instruments a single component instance. It is idempotent per
// instance identity: a second call for the same UID registers nothing.
func (e *Engine) Install(inst *component.Instance) {
	if inst == nil {
		return
	}

	e.mu.Lock()
	if e.installed[inst.UID()] {
		e.mu.Unlock()
		return
	}
	e.installed[inst.UID()] = true
	first := !e.sawInstall
	e.sawInstall = true
	setupTimer := e.setupTimer
	e.setupTimer = nil
	e.mu.Unlock()

	if first && setupTimer != nil {
		setupTimer.Stop()
	}

	isRoot := inst.IsRoot()
	for _, op := range e.ops {
		before, after, ok := op.HookPair()
		if !ok {
			continue
		}
		op := op
		if isRoot {
			component.InjectPair(inst, before, after, func(hook string, phase component.Phase) {
				e.handleRoot(op, hook, phase)
			})
		} else {
			component.InjectPair(inst, before, after, func(hook string, phase component.Phase) {
				e.handleChild(inst, op, hook, phase)
			})
		}
	}
}

// handleRoot processes one firing on the tree root. All root operations share
// one timeline: whichever pair fires while the root span is open refreshes the
// idle close; a PhaseAfter firing while no root span is open starts one, given
// an active trace.
func (e *Engine) handleRoot(op component.Operation, hook string, phase component.Phase) {
	now := e.clock.Now()
	tr := observability.Transition{
		Operation: op,
		Hook:      hook,
		Phase:     phase,
		Root:      true,
		Timestamp: now,
	}

	e.mu.Lock()
	switch {
	case e.rootSpan != nil:
		// This firing closes the previous open window; it does not open a new
		// one in the same call.
		e.scheduleRootFinishLocked(now)
		tr.SpanFinished = true

	case phase == component.PhaseAfter:
		if parent, ok := e.source.ActiveTrace(); ok {
			e.rootCtx, e.rootSpan = e.tracer.Start(parent, rootSpanName,
				trace.WithTimestamp(now),
				trace.WithAttributes(attribute.String(attrOperation, "render")),
			)
			// Arm the idle close right away so a render with no further
			// activity still completes after one quiet window.
			e.scheduleRootFinishLocked(now)
			tr.SpanStarted = true
		}
	}
	e.mu.Unlock()

	e.observer.ObserveTransition(tr)
}

// handleChild processes one firing on a non-root instance for one operation
// slot.
func (e *Engine) handleChild(inst *component.Instance, op component.Operation, hook string, phase component.Phase) {
	now := e.clock.Now()
	name := e.resolver.Resolve(inst)
	if !e.cfg.shouldTrack(name) {
		return
	}

	tr := observability.Transition{
		Component: name,
		Operation: op,
		Hook:      hook,
		Phase:     phase,
		Timestamp: now,
	}

	e.mu.Lock()
	parent, ok := e.childParentLocked()
	if !ok {
		// No root span and no active trace: nothing to attach to, so no state
		// is touched at all.
		e.mu.Unlock()
		return
	}

	slot := e.slots[inst.UID()]
	if span := slot[op]; span != nil {
		span.End(trace.WithTimestamp(now))
		delete(slot, op)
		// Child completions refresh the root span's idle close too; both
		// handlers share the one debounce slot.
		e.scheduleRootFinishLocked(now)
		tr.SpanFinished = true
	} else if phase == component.PhaseAfter {
		_, span := e.tracer.Start(parent, fmt.Sprintf("%s %s", name, op),
			trace.WithTimestamp(now),
			trace.WithAttributes(
				attribute.String(attrComponentName, name),
				attribute.String(attrOperation, string(op)),
			),
		)
		if slot == nil {
			slot = make(map[component.Operation]trace.Span)
			e.slots[inst.UID()] = slot
		}
		slot[op] = span
		tr.SpanStarted = true
	}
	// PhaseBefore and stale firings with an empty slot fall through untouched.
	e.mu.Unlock()

	e.observer.ObserveTransition(tr)
}

// childParentLocked picks the parent for a new child span: the engine's own
// root span while one is open, otherwise the active trace.
func (e *Engine) childParentLocked() (context.Context, bool) {
	if e.rootSpan != nil {
		return e.rootCtx, true
	}
	return e.source.ActiveTrace()
}

// scheduleRootFinishLocked implements the debounce rule: cancel any pending
// idle timer and arm a fresh one. When a timer expires without having been
// superseded, the root span finishes with the timestamp captured here, at the
// last reschedule, not the expiry time.
func (e *Engine) scheduleRootFinishLocked(ts time.Time) {
	if e.rootSpan == nil {
		return
	}
	if e.idleTimer != nil {
		e.idleTimer.Stop()
	}
	e.idleGen++
	gen := e.idleGen
	e.idleEnd = ts
	e.idleTimer = e.clock.AfterFunc(e.cfg.Timeout, func() {
		e.finishRoot(gen)
	})
}

// finishRoot runs when an idle timer expires. The generation check discards
// timers that lost the race with a newer reschedule after their Stop call.
func (e *Engine) finishRoot(gen uint64) {
	e.mu.Lock()
	if gen != e.idleGen || e.rootSpan == nil {
		e.mu.Unlock()
		return
	}
	span := e.rootSpan
	end := e.idleEnd
	e.rootSpan = nil
	e.rootCtx = nil
	e.idleTimer = nil
	e.mu.Unlock()

	span.End(trace.WithTimestamp(end))
}

// Close stops the engine's timers. Open spans are left to the trace provider;
// closing the engine mid-navigation abandons rather than fabricates an end
// timestamp for them.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.idleTimer != nil {
		e.idleTimer.Stop()
		e.idleTimer = nil
	}
	if e.setupTimer != nil {
		e.setupTimer.Stop()
		e.setupTimer = nil
	}
	e.idleGen++
}
