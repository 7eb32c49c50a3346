package logger

import (
	"fmt"
	"sync"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with an async console handler
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Async: true,
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
// Each gates on the level and calls log directly so the caller sits at
// the same frame depth as the Logger methods.

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	l := Default()
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	l := Default()
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	l := Default()
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	l := Default()
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	l := Default()
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	l := Default()
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	l := Default()
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	l := Default()
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	l := Default()
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	l := Default()
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
