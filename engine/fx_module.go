package engine

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/observability"
	"github.com/aalemi-dev/hooktrace/tracer"
)

// FXModule provides the span lifecycle engine to an Fx application.
//
// The module provides *Engine, built from the tracer client, the logger, and
// an optional observer. Dependencies required by this module: engine.Config
// and tracer.FXModule (or another *tracer.TracerClient provider) must be
// available in the dependency injection container; logger.FXModule supplies
// diagnostics. An observability.Observer binding is optional.
var FXModule = fx.Module("engine",
	fx.Provide(
		fx.Annotate(
			newEngineFromContainer,
			fx.ParamTags(``, ``, ``, `optional:"true"`),
		),
	),
	fx.Invoke(RegisterEngineLifecycle),
)

func newEngineFromContainer(cfg Config, client *tracer.TracerClient, lg logger.Logger, obs observability.Observer) *Engine {
	opts := []Option{WithLogger(lg)}
	if obs != nil {
		opts = append(opts, WithObserver(obs))
	}
	return NewEngine(cfg, client.Tracer(), client, opts...)
}

// RegisterEngineLifecycle stops the engine's timers when the application
// shuts down. Invoked automatically by FXModule.
func RegisterEngineLifecycle(lc fx.Lifecycle, e *Engine) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			e.Close()
			return nil
		},
	})
}
