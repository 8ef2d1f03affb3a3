// Package sanitize strips markup from free-text account fields.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows no elements at all; the content of script-like elements is dropped.
var policy = bluemonday.StrictPolicy()

// Clean removes every HTML element from s and keeps the text content as plain
// text: quotes and ampersands come back unescaped. Surrounding whitespace is trimmed.
func Clean(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
