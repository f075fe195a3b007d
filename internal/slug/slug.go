// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Slugify converts a free-text title into a URL-safe slug.
//
// The transformation lowercases the input, decomposes it (NFD), strips
// combining diacritical marks, maps the Vietnamese đ/Đ to "d", drops
// every character outside [0-9a-z-] and whitespace, turns whitespace
// runs into single hyphens, collapses hyphen runs, and trims leading
// and trailing hyphens.
//
// Slugify is total and idempotent: it never fails, empty input yields
// an empty slug, and reapplying it leaves a slug unchanged.
func Slugify(title string) string {
	s := norm.NFD.String(strings.ToLower(title))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x0300 && r <= 0x036f:
			// Combining diacritical marks, stripped.
		case r == 'đ' || r == 'Đ':
			// Not covered by NFD: the stroke is part of the base letter.
			b.WriteByte('d')
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	out := whitespaceRun.ReplaceAllString(b.String(), "-")
	out = hyphenRun.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
