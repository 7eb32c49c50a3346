// Package consolehandler writes log entries to a terminal or any io.Writer.
//
// AsyncConsoleHandler is the production configuration: producers append to
// an unbounded queue and return immediately, a single worker goroutine does
// all formatting and I/O, and Close drains everything enqueued before it
// was called. SyncConsoleHandler writes inline and exists for tests and
// short-lived tools.
package consolehandler
