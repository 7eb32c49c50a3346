// Package handler defines the Handler interface and the plumbing shared by
// concrete backends: the unbounded dispatch queue, delivery statistics, a
// fan-out MultiHandler, and a slog.Handler adapter that derives "::" module
// paths from caller PCs.
package handler
