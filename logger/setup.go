package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger implementing the Logger
// interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance. It is exposed for direct
	// access to Zap-specific functionality; most logging should go through
	// the wrapper methods.
	Zap *zap.Logger
}

// NewLoggerClient initializes a LoggerClient based on configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamps
//   - capital level encoding ("INFO", "WARN", ...) without color codes
//   - process ID and service name as default fields
//   - caller information with a configurable skip depth
//   - output directed to stderr
//
// If initialization fails the function calls log.Fatal; a process that cannot
// construct its logger has nothing sensible to continue with.
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(logLevel),
		Encoding:      "json",
		EncoderConfig: encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{Zap: zl}
}

// NewNop returns a LoggerClient that discards everything. It is the default
// inside library components so embedding applications opt in to diagnostics
// rather than opting out.
func NewNop() *LoggerClient {
	return &LoggerClient{Zap: zap.NewNop()}
}
