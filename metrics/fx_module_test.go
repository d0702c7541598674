package metrics_test

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/hooktrace/logger"
	"github.com/aalemi-dev/hooktrace/metrics"
	"github.com/aalemi-dev/hooktrace/observability"
)

func TestFXModule_ProvidesMetricsAndObserver(t *testing.T) {
	t.Parallel()
	var m *metrics.Metrics
	var obs observability.Observer

	app := fxtest.New(t,
		metrics.FXModule,
		fx.Provide(
			func() metrics.Config {
				return metrics.Config{
					ServiceName: "fx-test",
					Address:     metrics.Ptr(""),
				}
			},
			func() *logger.LoggerClient { return logger.NewNop() },
		),
		fx.Populate(&m, &obs),
	)

	app.RequireStart()
	defer app.RequireStop()

	if m == nil {
		t.Fatal("expected non-nil *Metrics")
	}
	if obs == nil {
		t.Fatal("expected the transition observer bound as observability.Observer")
	}
}
