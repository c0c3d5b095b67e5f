package binwire

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the codec's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the codec's logger.
// This must be called before any encode or decode operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

// debugf logs rare decode tolerances. It stays free unless the installed
// logger enables the debug level.
func debugf(format string, args ...any) {
	l := Logger()
	if l.Core().Enabled(zap.DebugLevel) {
		l.Sugar().Debugf(format, args...)
	}
}
