package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures tracing for your
// application.
//
// The module provides:
// 1. *TracerClient (concrete type) for direct use
// 2. Source interface for dependency injection
// 3. Shutdown hooks flushing pending spans on application stop
//
// Dependencies required by this module: a tracer.Config instance must be
// available in the dependency injection container.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient, // Provides *TracerClient
		fx.Annotate(
			func(t *TracerClient) Source { return t },
			fx.As(new(Source)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers a shutdown hook that flushes and stops the
// tracer provider when the application terminates. Invoked automatically by
// FXModule.
func RegisterTracerLifecycle(lc fx.Lifecycle, client *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			return client.Shutdown(ctx)
		},
	})
}
