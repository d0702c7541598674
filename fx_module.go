package hooktrace

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/hooktrace/component"
	"github.com/aalemi-dev/hooktrace/engine"
	"github.com/aalemi-dev/hooktrace/interceptor"
	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/tracer"
)

// FXModule assembles the full instrumentation stack for an Fx application.
//
// It composes the logger, tracer, engine and interceptor modules and attaches
// the engine and the interceptor to the *component.App found in the
// container. The embedding application provides the app and the four configs
// (logger, tracer, engine, interceptor); adding metrics.FXModule on top binds
// a Prometheus transition observer to the engine.
var FXModule = fx.Options(
	logger.FXModule,
	tracer.FXModule,
	engine.FXModule,
	interceptor.FXModule,
	fx.Invoke(attach),
)

func attach(app *component.App, e *engine.Engine, ic *interceptor.Client) {
	e.Attach(app)
	ic.Attach(app)
}
