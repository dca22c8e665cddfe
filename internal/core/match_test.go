package core

import "testing"

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"acme-*", "acme-widget", true},
		{"acme-*", "acme-", true},
		{"acme-*", "widget-acme", false},
		{"*", "anything", true},
		{"*", "", true},
		{"acme", "acme", true},
		{"acme", "acme-widget", false},
		{"acme", "Acme", false},
		{"*-widget", "acme-widget", true},
		{"*-widget", "acme-widgets", false},
		{"a*b*c", "abc", true},
		{"a*b*c", "axxbxxc", true},
		{"a*b*c", "acb", false},
		{"a*a", "a", false},
		{"internal/*", "internal/tools", true},
		{"internal/*", "external/tools", false},
	}

	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.name); got != tt.want {
			t.Fatalf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}
