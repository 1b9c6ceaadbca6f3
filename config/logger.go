package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// SetupLogger initializes the process-wide logger, writing to stdout and to
// a dated file under logs/.
func SetupLogger() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFileName := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout", logFileName}
	cfg.ErrorOutputPaths = []string{"stderr", logFileName}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = l.Sugar()
	return nil
}

// Logger returns the process logger, building a no-op one if SetupLogger
// was never called (tests).
func Logger() *zap.SugaredLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return logger
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	Logger().Infof(format, v...)
}

// Warning logs at warn level.
func Warning(format string, v ...interface{}) {
	Logger().Warnf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	Logger().Errorf(format, v...)
}
