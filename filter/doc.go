// Package filter decides which module paths are allowed to print.
//
// A Whitelist mutes every module except the configured prefixes, which is
// the tool of choice for silencing noisy third-party log sources while
// keeping the application's own modules visible. Matching is exact on "::"
// segment boundaries so that "foo::ba" never accidentally captures
// "foo::bar".
package filter
