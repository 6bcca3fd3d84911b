package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// New creates and returns a new Logger instance with production settings
// and ISO8601 timestamps.
func New() (*Logger, error) {
	return build(zapcore.InfoLevel)
}

// NewDebug returns a Logger that also emits the per-request debug lines.
func NewDebug() (*Logger, error) {
	return build(zapcore.DebugLevel)
}

// NewNop returns a Logger that discards everything. The client defaults to
// it so the library stays silent unless a caller injects a real logger.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func build(level zapcore.Level) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}
