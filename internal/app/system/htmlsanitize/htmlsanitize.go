// Package htmlsanitize cleans user-supplied course text before storage.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy   = newRichPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("table", "tr", "td", "th")
	p.AllowElements("u", "s", "mark")
	return p
}

// Sanitize keeps formatting markup (paragraphs, lists, links, tables) and
// removes scripts, event handlers and javascript: URLs. Used for course
// descriptions.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(richPolicy.Sanitize(s))
}

// maxTextPasses bounds the sanitize/unescape loop in Text.
const maxTextPasses = 4

// Text strips every tag and returns plain text. Entities that the policy
// escapes are decoded again so "Go & Rust" round-trips unchanged. Decoding
// can expose markup that arrived escaped ("&lt;script&gt;"), so the pair
// repeats until the output is stable.
func Text(s string) string {
	if s == "" {
		return ""
	}
	for i := 0; i < maxTextPasses; i++ {
		out := html.UnescapeString(strictPolicy.Sanitize(s))
		if out == s {
			return strings.TrimSpace(out)
		}
		s = out
	}
	// Still changing: keep the escaped form rather than decoding again.
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
