// internal/catalog/normalize.go
package catalog

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a free-text movie title for comparison: lower-case,
// punctuation replaced by spaces, whitespace runs collapsed, trimmed. Total and
// idempotent; empty input yields empty output.
func Normalize(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = nonAlnumRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
