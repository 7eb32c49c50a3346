package logger

import (
	"fmt"
	"time"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/filter"
	"github.com/hushlog/hush/handler"
)

// Logger is the main logging interface (immutable). Every record's module
// path is derived from the call site, checked against the whitelist, and
// only then handed to the handler.
type Logger struct {
	handler      handler.Handler
	fastHandler  handler.FastHandler
	level        core.Level
	rootModule   string
	whitelist    *filter.Whitelist
	fields       []core.Field
	trace        bool
	coarseClock  bool
	callerSkip   int
	recycleEntry bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler      handler.Handler
	fastHandler  handler.FastHandler
	level        core.Level
	rootModule   string
	whitelist    *filter.Whitelist
	fields       []core.Field
	trace        bool
	coarseClock  bool
	callerSkip   int
	recycleEntry bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for GetCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleEntry to avoid interface assertion in Build()
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		b.recycleEntry = rc.CanRecycleEntry()
	} else {
		b.recycleEntry = false
	}
	// Cache FastHandler for pool-free hot path
	b.fastHandler, _ = h.(handler.FastHandler)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithRootModule sets the module path prefix stripped from call sites,
// typically the application's own module path.
func (b *Builder) WithRootModule(root string) *Builder {
	b.rootModule = root
	return b
}

// WithWhitelist restricts output to the listed module subtrees. A nil
// whitelist admits everything.
func (b *Builder) WithWhitelist(w *filter.Whitelist) *Builder {
	b.whitelist = w
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithTrace includes the caller's function name in the rendered module
// segment. Line numbers are always included.
func (b *Builder) WithTrace(enabled bool) *Builder {
	b.trace = enabled
	return b
}

// WithCoarseClock timestamps entries from the shared coarse clock instead
// of time.Now, trading sub-millisecond accuracy for throughput.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:      b.handler,
		fastHandler:  b.fastHandler,
		level:        b.level,
		rootModule:   b.rootModule,
		whitelist:    b.whitelist,
		fields:       b.fields,
		trace:        b.trace,
		coarseClock:  b.coarseClock,
		callerSkip:   b.callerSkip,
		recycleEntry: b.recycleEntry,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// Level returns the minimum severity this logger emits.
func (l *Logger) Level() core.Level {
	return l.level
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return
	}

	l.log(level, msg, fields)
}

func (l *Logger) now() time.Time {
	if l.coarseClock {
		return core.CoarseNow()
	}
	return time.Now()
}

// log is the internal logging method. All exported logging entry points
// call it directly so the caller sits at a fixed frame depth.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	caller := core.GetCaller(l.callerSkip)
	module := core.ModulePath(caller.Function, l.rootModule)
	if !l.whitelist.Accepts(module) {
		return
	}
	if !l.trace {
		// Line stays in the output; the function name is trace-only
		caller.Function = ""
	}

	// Fast path: use FastHandler when there are no call-site fields.
	// This avoids sync.Pool Get/Put overhead. We cannot pass variadic
	// fields through the interface because that causes them to escape
	// to the heap.
	if l.fastHandler != nil && len(fields) == 0 {
		l.fastHandler.HandleLog(l.now(), level, module, msg, l.fields, nil, caller)
		return
	}

	// Get entry from pool AFTER level and whitelist checks
	entry := core.GetEntry()
	entry.Time = l.now()
	entry.Level = level
	entry.Module = module
	entry.Message = msg
	entry.Caller = caller

	// Add logger's default fields
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}

	// Add provided fields
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	err := l.handler.Handle(entry)
	if err != nil {
		return
	}

	// Return entry to pool if handler supports it
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Shutdown stops the logger's handler. For the asynchronous console
// handler this blocks until every record logged before the call has been
// printed, and surfaces a worker crash as an error. Safe to call more
// than once.
func (l *Logger) Shutdown() error {
	return l.Close()
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
