package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/filter"
	"github.com/hushlog/hush/handler"
	"github.com/hushlog/hush/handler/consolehandler"
)

// ErrAlreadyInitialized is returned when Install is called a second time.
// The backend owns a process-wide worker goroutine and the slog default,
// so it can only be installed once per process.
var ErrAlreadyInitialized = errors.New("logging backend already initialized")

var (
	installMu sync.Mutex
	installed *Logger

	// installOutput overrides the install destination in tests.
	installOutput io.Writer
)

// InstallOptions configures Install.
type InstallOptions struct {
	// Level is the minimum severity to emit. Zero value is TraceLevel.
	Level core.Level
	// RootModule is the application's module path; call sites under it
	// log with this prefix stripped.
	RootModule string
	// Whitelist restricts output to the listed module subtrees. Empty
	// admits everything.
	Whitelist []string
	// Trace includes caller function names in the module segment.
	Trace bool
	// CoarseClock timestamps records from the shared coarse clock.
	CoarseClock bool
}

// Install wires the asynchronous console backend into both this package's
// default logger and log/slog. rootModule is the application's module path;
// all severities pass.
//
// The returned Logger owns the worker; call its Shutdown before process
// exit to flush buffered records. Installing twice fails with
// ErrAlreadyInitialized and leaves the first installation untouched.
func Install(rootModule string) (*Logger, error) {
	return InstallWith(InstallOptions{RootModule: rootModule})
}

// InstallWhitelisted is Install restricted to the given module subtrees.
// Records from modules outside the whitelist are silently discarded before
// they reach the queue.
func InstallWhitelisted(rootModule string, modules ...string) (*Logger, error) {
	return InstallWith(InstallOptions{RootModule: rootModule, Whitelist: modules})
}

// InstallWith is Install with full control over the options.
func InstallWith(opts InstallOptions) (*Logger, error) {
	installMu.Lock()
	defer installMu.Unlock()

	if installed != nil {
		return nil, ErrAlreadyInitialized
	}

	w := installOutput
	if w == nil {
		w = os.Stdout
	}
	wl := filter.New(opts.Whitelist...)

	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: w,
		Async:  true,
	})

	l := NewBuilder().
		WithHandler(h).
		WithLevel(opts.Level).
		WithRootModule(opts.RootModule).
		WithWhitelist(wl).
		WithTrace(opts.Trace).
		WithCoarseClock(opts.CoarseClock).
		Build()

	installed = l
	SetDefault(l)
	slog.SetDefault(slog.New(handler.NewSlogHandler(h, handler.SlogOptions{
		Level:      opts.Level,
		RootModule: opts.RootModule,
		Whitelist:  wl,
		Trace:      opts.Trace,
	})))

	return l, nil
}

// Shutdown stops the installed backend, flushing everything logged before
// the call. Returns nil when nothing was installed.
func Shutdown() error {
	installMu.Lock()
	l := installed
	installMu.Unlock()
	if l == nil {
		return nil
	}
	return l.Shutdown()
}

// resetInstall clears the installation state. Test use only; the previous
// handler is not closed.
func resetInstall() {
	installMu.Lock()
	installed = nil
	installMu.Unlock()
}
