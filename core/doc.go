// Package core defines the shared types used across the hush backend.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log record, the CallerInfo trace attached to a record,
// and the Field type for zero-allocation structured key-value pairs.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Producers get an Entry with GetEntry; whichever side of
// the pipeline consumes it last (the worker goroutine for asynchronous
// handlers) returns it with PutEntry. The pool pre-allocates the Fields
// slice with capacity 8, which covers most log calls without triggering a
// slice growth.
//
// ModulePath derives the "::"-separated display module path of a record from
// the runtime-qualified name of the emitting function, stripping the
// configured root module prefix so that application code reads as
// "net::socket" rather than "github.com/acme/app/net/socket".
package core
