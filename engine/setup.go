package engine

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/hooktrace/component"
	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/namer"
	"github.com/aalemi-dev/hooktrace/observability"
)

// Engine is the span lifecycle engine. Construct it with NewEngine, attach it
// to an application with Attach, and it installs itself into every component
// instance the app creates from then on.
//
// All span state is guarded by one mutex: lifecycle firings arrive from the
// host's single execution context, but the idle-close timer fires on its own
// goroutine.
type Engine struct {
	cfg      Config
	ops      []component.Operation
	tracer   trace.Tracer
	source   TraceSource
	resolver *namer.Resolver
	log      logger.Logger
	clock    clockz.Clock
	observer observability.Observer

	mu         sync.Mutex
	installed  map[uint64]bool
	rootCtx    context.Context
	rootSpan   trace.Span
	slots      map[uint64]map[component.Operation]trace.Span
	idleTimer  clockz.Timer
	idleGen    uint64
	idleEnd    time.Time
	sawInstall bool
	setupTimer clockz.Timer
}

// Option customizes an Engine at construction time.
type Option func(*Engine)

// WithLogger sets the logger for the engine's diagnostics.
// Defaults to a no-op logger.
func WithLogger(lg logger.Logger) Option {
	return func(e *Engine) {
		if lg != nil {
			e.log = lg
		}
	}
}

// WithClock injects the clock used for timestamps and the debounce timer.
// Defaults to the real clock; tests pass a fake.
func WithClock(clock clockz.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithObserver sets the observer notified on every handled transition.
// Defaults to observability.NoOpObserver.
func WithObserver(obs observability.Observer) Option {
	return func(e *Engine) {
		if obs != nil {
			e.observer = obs
		}
	}
}

// WithResolver shares a name resolver with other collaborators, typically the
// error interceptor, so both see the same memoized names.
func WithResolver(r *namer.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// NewEngine creates an Engine from a configuration snapshot. Unknown hook
// names in cfg.Hooks are reported at warning level and skipped; everything
// else about cfg is normalized here so the engine never revisits defaults.
func NewEngine(cfg Config, tr trace.Tracer, source TraceSource, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		tracer:    tr,
		source:    source,
		resolver:  namer.NewResolver(),
		log:       logger.NewNop(),
		clock:     clockz.RealClock,
		observer:  observability.NoOpObserver{},
		installed: make(map[uint64]bool),
		slots:     make(map[uint64]map[component.Operation]trace.Span),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cfg.Timeout <= 0 {
		e.cfg.Timeout = DefaultTimeout
	}

	names := e.cfg.Hooks
	if len(names) == 0 {
		names = DefaultHooks
	}
	seen := make(map[component.Operation]bool, len(names))
	for _, name := range names {
		op, err := component.ParseOperation(name)
		if err != nil {
			e.log.Warn("skipping unknown lifecycle hook", err, map[string]interface{}{
				"hook": name,
			})
			continue
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		e.ops = append(e.ops, op)
	}

	return e
}

// Operations returns the validated, ordered operations this engine
// instruments.
func (e *Engine) Operations() []component.Operation {
	ops := make([]component.Operation, len(e.ops))
	copy(ops, e.ops)
	return ops
}
