package filter

import "strings"

// Whitelist is an immutable set of module-path prefixes. A record is printed
// only when its module path equals a whitelist entry or is a descendant of
// one on a "::" segment boundary. A nil or empty Whitelist mutes nothing.
//
// The set is built once at initialization and never mutated, so Accepts is
// safe to call from any number of producer goroutines without locking.
type Whitelist struct {
	entries []string
}

// New builds a Whitelist from the given module-path prefixes. Empty entries
// are ignored; passing no usable entries returns nil, which accepts all
// modules.
func New(entries ...string) *Whitelist {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &Whitelist{entries: kept}
}

// Empty reports whether the whitelist imposes no muting.
func (w *Whitelist) Empty() bool {
	return w == nil || len(w.entries) == 0
}

// Accepts reports whether a record from the given module path should be
// printed. Matching is segment-aware: entry "foo" accepts "foo" and
// "foo::bar" but not "foobar".
func (w *Whitelist) Accepts(module string) bool {
	if w.Empty() {
		return true
	}
	for _, e := range w.entries {
		if module == e {
			return true
		}
		if len(module) >= len(e)+2 && module[:len(e)] == e && module[len(e):len(e)+2] == "::" {
			return true
		}
	}
	return false
}

// Entries returns a copy of the configured prefixes, for diagnostics.
func (w *Whitelist) Entries() []string {
	if w == nil {
		return nil
	}
	out := make([]string, len(w.entries))
	copy(out, w.entries)
	return out
}
