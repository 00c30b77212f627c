// Package slugify derives URL-safe identifiers from human-readable
// titles. The result is deterministic: the same title always yields
// the same slug. Uniqueness is the store's job, not this package's:
// colliding titles surface as a constraint violation upstream.
package slugify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining
// marks, so "Integração" folds to "Integracao".
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make normalizes title into a slug matching [a-z0-9-]* with no
// leading, trailing, or doubled hyphens.
func Make(title string) string {
	lowered := strings.ToLower(title)

	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
