// Package logger is the user-facing API: a builder-configured, immutable
// Logger plus package-level convenience functions and a one-shot Install
// that wires the asynchronous console backend into log/slog.
package logger
