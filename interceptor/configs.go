package interceptor

// Config controls what the error wrapper attaches and reports.
type Config struct {
	// AttachProps includes the failing instance's live prop values in the
	// captured event's metadata.
	AttachProps bool `yaml:"attach_props" envconfig:"INTERCEPTOR_ATTACH_PROPS"`

	// LogErrors additionally writes every intercepted error to the diagnostic
	// logger, on top of forwarding it to the capture pipeline.
	LogErrors bool `yaml:"log_errors" envconfig:"INTERCEPTOR_LOG_ERRORS"`
}
