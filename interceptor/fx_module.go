package interceptor

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/hooktrace/logger"
)

// FXModule provides the error interceptor to an Fx application.
//
// The module provides *Client, built from the interceptor configuration, the
// logger, and a Reporter. Dependencies required by this module: an
// interceptor.Config and a Reporter binding must be available in the
// dependency injection container; logger.FXModule supplies diagnostics. The
// Reporter binding is optional, without one the interceptor stays inert.
var FXModule = fx.Module("interceptor",
	fx.Provide(
		fx.Annotate(
			newClientFromContainer,
			fx.ParamTags(``, `optional:"true"`, ``),
		),
	),
)

func newClientFromContainer(cfg Config, reporter Reporter, lg logger.Logger) *Client {
	return NewClient(cfg, reporter, WithLogger(lg))
}
