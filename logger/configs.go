package logger

// Log level names accepted in Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the structured logger.
type Config struct {
	// Level is the minimum level that gets emitted. One of the level
	// constants above; unknown values fall back to Info.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName identifies the service in every log entry, useful when
	// several services share a log sink.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// CallerSkip adjusts how many wrapper frames zap skips when resolving the
	// caller of a log entry. Defaults to 1, which points at the call site of
	// the wrapper methods. Services wrapping this logger again use 2.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
