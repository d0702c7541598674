package tracer

// Config defines the configuration for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies the service that generated the spans. Required.
	//
	// Example values: "storefront", "admin-console"
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv indicates the deployment environment, used to set the
	// "deployment.environment" resource attribute on all spans.
	// Common values: "development", "staging", "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport controls whether spans are exported to an observability
	// backend over OTLP HTTP. When false, tracing still works for span
	// parenting and context propagation; spans just never leave the process.
	// Development environments typically leave this off.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
