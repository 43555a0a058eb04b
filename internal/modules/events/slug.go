package events

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}]+`)
	nonWordChars  = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`--+`)
	lower         = cases.Lower(language.Und)
)

// Slugify derives the URL segment used in share links. Whitespace runs
// become hyphens, anything outside [A-Za-z0-9_-] is dropped and repeated
// hyphens collapse to one.
func Slugify(title string) string {
	if title == "" {
		return ""
	}
	s := strings.TrimFunc(lower.String(title), isSlugSpace)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWordChars.ReplaceAllString(s, "")
	return hyphenRun.ReplaceAllString(s, "-")
}

// isSlugSpace matches what whitespaceRun treats as whitespace at the edges.
func isSlugSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
