package hooktrace

import (
	"context"
	"errors"

	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/hooktrace/component"
	"github.com/aalemi-dev/hooktrace/engine"
	"github.com/aalemi-dev/hooktrace/interceptor"
	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/namer"
	"github.com/aalemi-dev/hooktrace/observability"
	"github.com/aalemi-dev/hooktrace/tracer"
)

// ErrNoApp is returned by Setup when no host application was given.
var ErrNoApp = errors.New("hooktrace: no host application")

// Instrumentation bundles everything Setup wired onto one application.
type Instrumentation struct {
	// Engine is the span lifecycle engine attached to the app.
	Engine *engine.Engine

	// Interceptor is the error interceptor attached to the app. Nil when no
	// reporter was configured.
	Interceptor *interceptor.Client

	// Tracer is the trace client the engine consumes. Owned by the caller
	// when supplied through WithTracerClient, otherwise owned here.
	Tracer *tracer.TracerClient

	ownsTracer bool
}

type options struct {
	engineCfg      engine.Config
	interceptorCfg interceptor.Config
	tracerCfg      tracer.Config
	client         *tracer.TracerClient
	reporter       interceptor.Reporter
	log            logger.Logger
	observer       observability.Observer
	clock          clockz.Clock
}

// Option customizes Setup.
type Option func(*options)

// WithEngineConfig sets the span engine configuration.
func WithEngineConfig(cfg engine.Config) Option {
	return func(o *options) { o.engineCfg = cfg }
}

// WithInterceptorConfig sets the error interceptor configuration.
func WithInterceptorConfig(cfg interceptor.Config) Option {
	return func(o *options) { o.interceptorCfg = cfg }
}

// WithTracerConfig sets the configuration used when Setup constructs its own
// trace client. Ignored when WithTracerClient is also given.
func WithTracerConfig(cfg tracer.Config) Option {
	return func(o *options) { o.tracerCfg = cfg }
}

// WithTracerClient reuses an existing trace client instead of constructing
// one. The caller keeps ownership; Close will not shut it down.
func WithTracerClient(client *tracer.TracerClient) Option {
	return func(o *options) { o.client = client }
}

// WithReporter enables error interception, forwarding captured exceptions to
// the given pipeline. Without a reporter the host's error handling is left
// untouched.
func WithReporter(r interceptor.Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithLogger sets the diagnostics logger shared by all wired adapters.
func WithLogger(lg logger.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.log = lg
		}
	}
}

// WithObserver plugs a transition observer into the engine, for example
// metrics.NewTransitionObserver.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithClock injects the clock used for timestamps and timers.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// Setup attaches lifecycle span tracking, and optionally error interception,
// to app. The engine and the interceptor share one name resolver so a
// component resolves to the same display name in spans and in error metadata.
func Setup(app *component.App, opts ...Option) (*Instrumentation, error) {
	if app == nil {
		return nil, ErrNoApp
	}

	o := options{
		log:   logger.NewNop(),
		clock: clockz.RealClock,
	}
	for _, opt := range opts {
		opt(&o)
	}

	inst := &Instrumentation{Tracer: o.client}
	if inst.Tracer == nil {
		client, err := tracer.NewClient(o.tracerCfg)
		if err != nil {
			return nil, err
		}
		inst.Tracer = client
		inst.ownsTracer = true
	}

	resolver := namer.NewResolver()

	engineOpts := []engine.Option{
		engine.WithLogger(o.log),
		engine.WithResolver(resolver),
		engine.WithClock(o.clock),
	}
	if o.observer != nil {
		engineOpts = append(engineOpts, engine.WithObserver(o.observer))
	}
	inst.Engine = engine.NewEngine(o.engineCfg, inst.Tracer.Tracer(), inst.Tracer, engineOpts...)
	inst.Engine.Attach(app)

	if o.reporter != nil {
		inst.Interceptor = interceptor.NewClient(o.interceptorCfg, o.reporter,
			interceptor.WithLogger(o.log),
			interceptor.WithResolver(resolver),
			interceptor.WithClock(o.clock),
		)
		inst.Interceptor.Attach(app)
	}

	return inst, nil
}

// Close stops the engine's timers and, when Setup constructed the trace
// client itself, flushes and shuts it down.
func (i *Instrumentation) Close(ctx context.Context) error {
	i.Engine.Close()
	if i.ownsTracer {
		return i.Tracer.Shutdown(ctx)
	}
	return nil
}
