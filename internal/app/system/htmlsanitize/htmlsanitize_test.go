package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/mahirsiam2004/altrion-server/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	if got := htmlsanitize.Sanitize(input); strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	input := "<ul><li>Variables</li><li>Functions</li></ul>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected list preserved, got %q", got)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Intro to Go", "Intro to Go"},
		{"ampersand", "Go & Rust", "Go & Rust"},
		{"tags stripped", "<b>Intro</b> to <i>Go</i>", "Intro to Go"},
		{"script dropped", "Go<script>alert(1)</script>", "Go"},
		{"trimmed", "  Go  ", "Go"},
		{"less-than kept as text", "a < b", "a < b"},
		{"escaped script", "&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"escaped tag in title", "Intro &lt;b&gt;Go&lt;/b&gt;", "Intro Go"},
		{"double escaped script", "&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Text(tt.input)
			if got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.Contains(got, "<script") {
				t.Errorf("Text(%q) returned live markup %q", tt.input, got)
			}
		})
	}
}
