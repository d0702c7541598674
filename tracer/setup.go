package tracer

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans produced by this module.
const instrumentationName = "github.com/aalemi-dev/hooktrace"

// TracerClient wraps an OpenTelemetry TracerProvider and tracks the currently
// active transaction. It implements the Source interface.
//
// Safe for concurrent use; the transaction slot is guarded because the host's
// navigation code and deferred timers may touch it from different goroutines.
type TracerClient struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer

	mu         sync.Mutex
	activeCtx  context.Context
	activeSpan trace.Span
}

// NewClient creates a TracerClient with its own OpenTelemetry provider.
//
// If export is enabled in the configuration, an OTLP HTTP exporter is attached
// with batching; endpoint and credentials come from the standard OTEL_*
// environment variables. The provider is registered globally together with a
// W3C trace-context propagator.
func NewClient(cfg Config) (*TracerClient, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options, sdktrace.WithResource(newResource(cfg)))

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &TracerClient{
		provider: tp,
		tracer:   tp.Tracer(instrumentationName),
	}, nil
}

// NewClientWithProvider creates a TracerClient around an externally owned
// provider. The caller keeps responsibility for shutting the provider down;
// this is the constructor tests and embedding applications with existing
// OpenTelemetry setups use.
func NewClientWithProvider(tp *sdktrace.TracerProvider) *TracerClient {
	return &TracerClient{
		provider: tp,
		tracer:   tp.Tracer(instrumentationName),
	}
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)
}

// Tracer returns the underlying OpenTelemetry tracer, used by the engine to
// start lifecycle spans.
func (t *TracerClient) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes and stops the owned provider. Safe to call when the
// provider was supplied externally; it then shuts that provider down too, so
// callers sharing a provider should skip this and manage it themselves.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	if err := t.provider.ForceFlush(ctx); err != nil {
		return fmt.Errorf("tracer: flush failed during shutdown: %w", err)
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer: shutdown failed: %w", err)
	}
	return nil
}
