// Package hooktrace instruments a component-tree application's lifecycle with
// OpenTelemetry spans and error capture.
//
// Setup wires the three adapters onto a host application in one call: the
// span lifecycle engine, which turns lifecycle hook firings into nested spans
// under the active trace with an idle-debounced close for the root render
// span; the component name resolver shared between them; and the error
// interceptor, which wraps the host's global error callback with deferred
// capture while preserving the original handler.
//
//	client, err := tracer.NewClient(tracer.Config{ServiceName: "checkout-ui"})
//	if err != nil {
//		return err
//	}
//	inst, err := hooktrace.Setup(app,
//		hooktrace.WithTracerClient(client),
//		hooktrace.WithEngineConfig(engine.Config{TrackComponents: true}),
//		hooktrace.WithReporter(reporter),
//	)
//
// Applications built on Fx use FXModule instead and provide the configs and
// the *component.App in the container. Adding metrics.FXModule on top binds a
// Prometheus-backed observer to the engine automatically.
package hooktrace
