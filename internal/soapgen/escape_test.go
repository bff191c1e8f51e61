package soapgen

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&apos;s"},
		{"&amp;", "&amp;amp;"},
		{"Zoë & Łukasz", "Zoë &amp; Łukasz"},
		{"tab\tand\r\nbreaks", "tab\tand\r\nbreaks"},
		{"vertical\vtab", "verticaltab"},
		{"nul\x00 bell\a esc\x1b", "nul bell esc"},
		{"bad \xff\xfe bytes", "bad \uFFFD bytes"},
		{"non\uFFFEchar", "nonchar"},
		{"emoji 🎉", "emoji 🎉"},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLineWriterComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "<!-- plain -->"},
		{"a--b", "<!-- a- -b -->"},
		{"a---b", "<!-- a- - -b -->"},
		{"----", "<!-- - - - - -->"},
		{"form\ffeed", "<!-- formfeed -->"},
	}

	for _, tt := range tests {
		var w lineWriter
		w.comment(0, tt.in)

		got := w.String()
		if got != tt.want {
			t.Errorf("comment(%q) = %q, want %q", tt.in, got, tt.want)
		}

		if inner := got[len("<!-- ") : len(got)-len(" -->")]; strings.Contains(inner, "--") {
			t.Errorf("comment(%q) still contains --: %q", tt.in, got)
		}
	}
}
