package conference

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a conference name for comparison: lowercase, strip
// everything outside [a-z0-9\s], collapse whitespace runs, trim. Total and
// idempotent; empty input normalizes to the empty string.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	name = nonAlnumPattern.ReplaceAllString(name, "")
	name = whitespacePattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
