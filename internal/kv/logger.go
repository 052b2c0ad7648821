package kv

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/pebble"
)

var _ pebble.Logger = (*SlogLogger)(nil)

// SlogLogger routes Pebble diagnostics to a slog.Logger.
type SlogLogger struct {
	Logger *slog.Logger
}

func (l *SlogLogger) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.logger().Debug(fmt.Sprintf(format, args...), "component", "pebble")
}

func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.logger().Error(fmt.Sprintf(format, args...), "component", "pebble")
}

func (l *SlogLogger) Fatalf(format string, args ...interface{}) {
	l.logger().Error(fmt.Sprintf(format, args...), "component", "pebble")
	os.Exit(1)
}
