package handler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/filter"
)

// LevelTrace is the slog level mapped to core.TraceLevel. slog has no trace
// level of its own, so we follow the convention of extending downward in
// steps of 4.
const LevelTrace = slog.LevelDebug - 4

// SlogOptions configures a SlogHandler.
type SlogOptions struct {
	// Level is the minimum severity to forward. Records below it are
	// rejected in Enabled before slog materializes them.
	Level core.Level

	// RootModule is the module path prefix stripped from derived module
	// paths, typically the application's own module path. Empty leaves
	// paths fully qualified.
	RootModule string

	// Whitelist restricts output to the listed module subtrees. Nil or
	// empty admits everything.
	Whitelist *filter.Whitelist

	// Trace includes the caller's function name in the rendered module
	// segment. Line numbers are always included.
	Trace bool
}

// SlogHandler adapts a Handler to the slog.Handler interface, so the
// standard library facade can drive the asynchronous console backend.
// The module path of each record is derived from its caller PC.
type SlogHandler struct {
	handler    Handler
	level      core.Level
	rootModule string
	whitelist  *filter.Whitelist
	trace      bool
	attrs      []core.Field
	group      string
	recycle    bool
}

// NewSlogHandler creates a slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, opts SlogOptions) *SlogHandler {
	recycle := false
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		recycle = rc.CanRecycleEntry()
	}
	return &SlogHandler{
		handler:    h,
		level:      opts.Level,
		rootModule: opts.RootModule,
		whitelist:  opts.Whitelist,
		trace:      opts.Trace,
		recycle:    recycle,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it to the
// wrapped handler. Records from modules outside the whitelist are recycled
// and silently discarded.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message
	entry.Caller, entry.Module = s.resolveCaller(record.PC)

	if !s.whitelist.Accepts(entry.Module) {
		core.PutEntry(entry)
		return nil
	}

	// Pre-configured attrs first, then the record's own
	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = append(entry.Fields, slogAttrToField(s.group, a))
		return true
	})

	err := s.handler.Handle(entry)
	if s.recycle {
		core.PutEntry(entry)
	}
	return err
}

// resolveCaller turns a record PC into caller info and a module path.
// A zero PC (slog records built without AddSource info) yields an empty
// module, which renders as "unknown".
func (s *SlogHandler) resolveCaller(pc uintptr) (core.CallerInfo, string) {
	if pc == 0 {
		return core.CallerInfo{}, ""
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.Function == "" {
		return core.CallerInfo{}, ""
	}
	caller := core.CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
	module := core.ModulePath(frame.Function, s.rootModule)
	if !s.trace {
		caller.Function = ""
	}
	return caller, module
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(s.group, a))
	}
	clone := *s
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	clone := *s
	clone.attrs = append([]core.Field(nil), s.attrs...)
	clone.group = newGroup
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the group
// prefix if present.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		t := a.Value.Time()
		return core.Field{Key: key, Type: core.TimeType, Int64: t.UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())}
	case slog.KindGroup:
		// Flatten group attrs with the group name as a key prefix
		attrs := a.Value.Group()
		if len(attrs) > 0 {
			return slogAttrToField(key, attrs[0])
		}
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	}
}
