package consolehandler_test

import (
	"io"

	"github.com/hushlog/hush/formatter"
	"github.com/hushlog/hush/handler/consolehandler"
)

// Create the production configuration: an async handler whose worker owns
// all console I/O. Close flushes everything queued before it was called.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: io.Discard,
		Async:  true,
	})
	defer h.Close()
}

// Create a synchronous handler with machine-readable output.
func ExampleNewConsoleHandler_sync() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Async:     false,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()
}
