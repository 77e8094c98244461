// Package slug derives URL-safe identifiers from human-readable text.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases text, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens.
// Any input produces a result; an empty or all-symbol input yields "".
func Make(text string) string {
	s := strings.ToLower(text)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
