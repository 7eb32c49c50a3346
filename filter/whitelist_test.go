package filter

import (
	"testing"
)

func TestWhitelist_EmptyAcceptsEverything(t *testing.T) {
	var w *Whitelist
	if !w.Accepts("anything::at::all") {
		t.Error("nil whitelist must accept every module")
	}

	w = New()
	if !w.Accepts("db::pool") {
		t.Error("empty whitelist must accept every module")
	}
	if !w.Empty() {
		t.Error("Empty() = false for whitelist with no entries")
	}
}

func TestWhitelist_SegmentExactMatching(t *testing.T) {
	w := New("a")

	tests := []struct {
		module string
		want   bool
	}{
		{"a", true},
		{"a::b", true},
		{"a::b::c", true},
		{"ab", false},
		{"ab::c", false},
		{"b::a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := w.Accepts(tt.module); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.module, got, tt.want)
		}
	}
}

func TestWhitelist_PrefixIsNotSubstring(t *testing.T) {
	w := New("foo::ba")

	if w.Accepts("foo::bar") {
		t.Error(`entry "foo::ba" must not match module "foo::bar"`)
	}
	if !w.Accepts("foo::ba::qux") {
		t.Error(`entry "foo::ba" must match descendant "foo::ba::qux"`)
	}
}

func TestWhitelist_MultipleEntries(t *testing.T) {
	w := New("net", "db::pool")

	tests := []struct {
		module string
		want   bool
	}{
		{"net::socket", true},
		{"net", true},
		{"db::pool", true},
		{"db::pool::conn", true},
		{"db", false},
		{"db::metrics", false},
	}

	for _, tt := range tests {
		if got := w.Accepts(tt.module); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.module, got, tt.want)
		}
	}
}

func TestWhitelist_IgnoresBlankEntries(t *testing.T) {
	w := New("", "  ")
	if w != nil {
		t.Error("New with only blank entries should return nil (no muting)")
	}

	w = New("net", "")
	if w.Accepts("db::pool") {
		t.Error("blank entry must not act as a match-everything prefix")
	}
	if !w.Accepts("net::socket") {
		t.Error("real entry must still match")
	}
}

func TestWhitelist_Entries(t *testing.T) {
	w := New("net", "db")
	got := w.Entries()
	if len(got) != 2 || got[0] != "net" || got[1] != "db" {
		t.Errorf("Entries() = %v, want [net db]", got)
	}

	// Mutating the copy must not affect the whitelist
	got[0] = "hacked"
	if !w.Accepts("net") {
		t.Error("whitelist mutated through Entries() copy")
	}
}

func BenchmarkWhitelistAccepts(b *testing.B) {
	w := New("net", "db::pool", "api")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Accepts("db::pool::conn")
	}
}
