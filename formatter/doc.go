// Package formatter renders log entries into their wire representation.
//
// ConsoleFormatter produces the human-facing colored line format; severity
// and module segment are styled per a fixed severity-to-color table
// (Error=red, Warn=yellow, Debug=dim, Trace=gray, Info uncolored).
// JSONFormatter produces machine-readable output for log shippers.
//
// Formatters are pure: given the same Entry value they always produce the
// same bytes, so rendering may happen on either side of the dispatch queue.
// The optional WriterFormatter and BufferFormatter interfaces let handlers
// skip intermediate allocations on the hot path.
package formatter
