package assets

import (
	"regexp"
	"testing"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint("animate.js", []byte("one"))
	b := Fingerprint("animate.js", []byte("two"))

	if !regexp.MustCompile(`^animate\.[0-9a-f]{8}\.js$`).MatchString(a) {
		t.Errorf("Fingerprint() = %q", a)
	}
	if a == b {
		t.Error("different content should give different names")
	}
	if a != Fingerprint("animate.js", []byte("one")) {
		t.Error("Fingerprint should be deterministic")
	}
	if got := Fingerprint("LICENSE", []byte("x")); !regexp.MustCompile(`^LICENSE\.[0-9a-f]{8}$`).MatchString(got) {
		t.Errorf("no extension: %q", got)
	}
}

func TestManifest(t *testing.T) {
	m := NewManifest()
	name := m.Add("animate.js", []byte("console.log(1)"))

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"found entry", "animate.js", name},
		{"missing entry returns original", "unknown.js", "unknown.js"},
		{"empty string returns empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Resolve(tt.source); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.expected)
			}
		})
	}

	e, ok := m.Lookup(name)
	if !ok || e.Source != "animate.js" || string(e.Content) != "console.log(1)" {
		t.Errorf("Lookup(%q) = %+v, %v", name, e, ok)
	}

	renamed := m.Add("animate.js", []byte("console.log(2)"))
	if _, ok := m.Lookup(name); ok {
		t.Error("replaced entry should no longer resolve")
	}
	if _, ok := m.Lookup(renamed); !ok {
		t.Error("new entry should resolve")
	}
	if got := m.Sources(); len(got) != 1 || got[0] != "animate.js" {
		t.Errorf("Sources() = %v", got)
	}
}

func TestResolvers(t *testing.T) {
	m := NewManifest()
	name := m.Add("animate.js", []byte("x"))

	if got := NewResolver(m, "/assets/").Asset("animate.js"); got != "/assets/"+name {
		t.Errorf("manifest resolver = %q", got)
	}
	if got := NewResolver(m, "/assets/").Asset("other.css"); got != "/assets/other.css" {
		t.Errorf("manifest resolver fallback = %q", got)
	}
	if got := NewPassthroughResolver("/").Asset("animate.js"); got != "/animate.js" {
		t.Errorf("passthrough = %q", got)
	}
}
