// Package slug derives filesystem- and URL-safe identifiers for exemplars.
package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is slugified when neither a slug nor a title is given.
const Fallback = "example"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Resolve returns explicit verbatim when it is non-empty, otherwise the
// slugified title (or Fallback when the title is empty too).
func Resolve(explicit, title string) string {
	if explicit != "" {
		return explicit
	}
	if title == "" {
		title = Fallback
	}
	return Slugify(title)
}

// Slugify lower-cases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims a leading and a trailing hyphen.
// The result is empty when s has no ASCII letters or digits.
func Slugify(s string) string {
	lower := cases.Lower(language.Und).String(s)
	out := nonAlnum.ReplaceAllString(lower, "-")
	out = strings.TrimPrefix(out, "-")
	return strings.TrimSuffix(out, "-")
}
