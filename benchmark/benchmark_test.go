package benchmark

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/filter"
	"github.com/hushlog/hush/formatter"
	"github.com/hushlog/hush/handler/consolehandler"
	"github.com/hushlog/hush/logger"
)

// BenchmarkPipelineNoop measures the logger front-end alone: level gate,
// caller resolution, module derivation and dispatch into a no-op handler.
func BenchmarkPipelineNoop(b *testing.B) {
	l := logger.NewBuilder().
		WithHandler(newNoopHandler()).
		WithLevel(core.InfoLevel).
		WithRootModule("github.com/hushlog/hush").
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("noop message")
	}
}

func BenchmarkPipelineNoopParallel(b *testing.B) {
	l := logger.NewBuilder().
		WithHandler(newNoopHandler()).
		WithLevel(core.InfoLevel).
		WithRootModule("github.com/hushlog/hush").
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("parallel noop message")
		}
	})
}

func BenchmarkSyncConsole(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: io.Discard,
		Async:  false,
	})
	defer h.Close()
	l := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		WithRootModule("github.com/hushlog/hush").
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("sync console message")
	}
}

// BenchmarkAsyncEnqueue measures the producer-side cost only; the worker
// drains into io.Discard concurrently.
func BenchmarkAsyncEnqueue(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: io.Discard,
		Async:  true,
	})
	l := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		WithRootModule("github.com/hushlog/hush").
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("async message")
	}
	b.StopTimer()
	h.Close()
}

func BenchmarkAsyncEnqueueParallel(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: io.Discard,
		Async:  true,
	})
	l := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		WithRootModule("github.com/hushlog/hush").
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("parallel async message")
		}
	})
	b.StopTimer()
	h.Close()
}

func BenchmarkDisabledLevel(b *testing.B) {
	l := logger.NewBuilder().
		WithHandler(newNoopHandler()).
		WithLevel(core.ErrorLevel).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug("skipped", logger.String("key", "value"))
	}
}

func BenchmarkCoarseClock(b *testing.B) {
	l := logger.NewBuilder().
		WithHandler(newNoopHandler()).
		WithLevel(core.InfoLevel).
		WithCoarseClock(true).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("coarse clock message")
	}
}

func BenchmarkConsoleFormat(b *testing.B) {
	f := formatter.NewConsoleFormatter(formatter.Config{NoColor: true})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Module:  "deserialize::sounds",
		Message: "unexpected audio data length",
	}
	var buf bytes.Buffer

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}

func BenchmarkWhitelistedDrop(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: io.Discard,
		Async:  false,
	})
	defer h.Close()
	l := logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.TraceLevel).
		WithRootModule("github.com/hushlog/hush").
		WithWhitelist(filter.New("net", "db::pool")).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// module "benchmark" is not whitelisted; measures the muting path
		l.Info("muted message")
	}
}
