package tracer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/hooktrace/tracer"
)

func newRecordingClient() (*tracer.TracerClient, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	return tracer.NewClientWithProvider(tp), exporter
}

func TestNewClient_NoExport(t *testing.T) {
	t.Parallel()
	client, err := tracer.NewClient(tracer.Config{
		ServiceName: "test-service",
		AppEnv:      "test",
	})
	require.NoError(t, err)
	assert.NotNil(t, client.Tracer())

	_, ok := client.ActiveTrace()
	assert.False(t, ok, "no transaction should be active after construction")
}

func TestStartTransaction_BecomesActiveTrace(t *testing.T) {
	t.Parallel()
	client, _ := newRecordingClient()

	txCtx, span := client.StartTransaction(context.Background(), "navigation /home")
	require.NotNil(t, span)

	activeCtx, ok := client.ActiveTrace()
	require.True(t, ok)
	assert.Equal(t, txCtx, activeCtx)

	client.EndTransaction()
	_, ok = client.ActiveTrace()
	assert.False(t, ok)
}

func TestStartTransaction_ReplacesInFlightTransaction(t *testing.T) {
	t.Parallel()
	client, exporter := newRecordingClient()

	client.StartTransaction(context.Background(), "first")
	client.StartTransaction(context.Background(), "second")

	// The first transaction was ended when the second started.
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "first", spans[0].Name)

	client.EndTransaction()
	spans = exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "second", spans[1].Name)
}

func TestEndTransaction_NoTransactionIsNoOp(t *testing.T) {
	t.Parallel()
	client, exporter := newRecordingClient()

	assert.NotPanics(t, client.EndTransaction)
	assert.Empty(t, exporter.GetSpans())
}

func TestFXModule_ProvidesSourceInterface(t *testing.T) {
	t.Parallel()
	var src tracer.Source

	app := fxtest.New(t,
		tracer.FXModule,
		fx.Provide(func() tracer.Config {
			return tracer.Config{ServiceName: "fx-test", AppEnv: "test"}
		}),
		fx.Populate(&src),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, src)
}
