package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/observability"
)

// FXModule defines the Fx module for the metrics package.
//
// The module provides:
// 1. *Metrics (concrete type) for direct use
// 2. MetricsCollector interface for dependency injection
// 3. *TransitionObserver, also bound as observability.Observer so the engine
//    picks it up automatically
// 4. Lifecycle management for the metrics HTTP server
//
// Dependencies required by this module: a metrics.Config instance must be
// available in the dependency injection container; a *logger.LoggerClient is
// needed for startup and shutdown logs.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics, // Provides *Metrics
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		NewTransitionObserver, // Provides *TransitionObserver
		fx.Annotate(
			func(o *TransitionObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle of the
// metrics HTTP server. Invoked automatically by FXModule; when the endpoint
// is disabled the hooks are no-ops.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if m.Server == nil {
				return nil
			}
			go func() {
				log.Info("starting metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server failed", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if m.Server == nil {
				return nil
			}
			log.Info("shutting down metrics server", nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
