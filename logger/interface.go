package logger

// Logger provides a high-level interface for structured logging.
// It wraps Uber's Zap logger with a simplified API.
//
// This interface is implemented by the concrete *LoggerClient type.
// Instrumentation in this module only ever needs Warn and Error for its own
// diagnostics; the remaining levels exist for the embedding application.
type Logger interface {
	// Debug logs a debug-level message, useful for development and troubleshooting.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message about general application progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning message, indicating potential issues.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(msg string, err error, fields ...map[string]interface{})
}
