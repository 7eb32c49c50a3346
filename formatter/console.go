package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hushlog/hush/core"
)

// DefaultTimestampFormat renders wall-clock time as HH:MM:SS.mmm.
const DefaultTimestampFormat = "15:04:05.000"

// ConsoleFormatter renders log entries as severity-colored single lines:
//
//	HH:MM:SS.mmm <SEVERITY> @ <module::path>[::<function>][:<line>] | <message>
//
// The severity token and module segment carry the severity's color; the
// message is written verbatim. Structured fields, when present, follow the
// message as " key=value" pairs.
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &ConsoleFormatter{Config: cfg}
}

// severityText holds the uppercase severity tokens, left-padded to a fixed
// five-column width so the module segment stays aligned across lines.
var severityText = [...]string{
	core.TraceLevel: "TRACE",
	core.DebugLevel: "DEBUG",
	core.InfoLevel:  " INFO",
	core.WarnLevel:  " WARN",
	core.ErrorLevel: "ERROR",
}

// severityStyle maps each severity to its display style. Info stays
// uncolored: it is the baseline the other severities stand out against.
var severityStyle = [...]*color.Color{
	core.TraceLevel: color.New(color.FgHiBlack),
	core.DebugLevel: color.New(color.Faint),
	core.InfoLevel:  nil,
	core.WarnLevel:  color.New(color.FgYellow),
	core.ErrorLevel: color.New(color.FgRed),
}

func levelIndex(l core.Level) int {
	if l < core.TraceLevel || l > core.ErrorLevel {
		return int(core.InfoLevel)
	}
	return int(l)
}

// Format formats an entry as a styled console line
func (f *ConsoleFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *ConsoleFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *ConsoleFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *ConsoleFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	style := severityStyle[levelIndex(entry.Level)]
	f.writeStyled(buf, style, severityText[levelIndex(entry.Level)])

	buf.WriteString(" @ ")
	f.writeStyled(buf, style, moduleSegment(entry))

	buf.WriteString(" | ")
	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		field.AppendValue(buf)
	}

	buf.WriteByte('\n')
}

func (f *ConsoleFormatter) writeStyled(buf *bytes.Buffer, style *color.Color, s string) {
	if f.NoColor || style == nil {
		buf.WriteString(s)
		return
	}
	style.Fprint(buf, s)
}

// moduleSegment composes the module path, the short function name when trace
// info was captured, and the line number suffix.
func moduleSegment(entry *core.Entry) string {
	var sb strings.Builder
	if entry.Module != "" {
		sb.WriteString(entry.Module)
	} else {
		sb.WriteString("unknown")
	}
	if entry.Caller.Defined {
		if fn := core.ShortFuncName(entry.Caller.Function); fn != "" {
			sb.WriteString(core.ModuleSeparator)
			sb.WriteString(fn)
		}
		if entry.Caller.Line > 0 {
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(entry.Caller.Line))
		}
	}
	return sb.String()
}
