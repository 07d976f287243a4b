// Package normalize provides utilities for normalizing and sanitizing tag and color tokens.
//
// Swipe tags and quiz answers arrive from clients in mixed shapes: casing
// varies, Dutch answers may carry diacritics ("ivoorkleurig café-look"),
// and some clients send spaces where the canonical vocabulary uses
// underscores. All matching in the scoring pipeline runs on the canonical
// form produced here.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, strips combining marks, and recomposes.
//
//nolint:gochecknoglobals // Static transformer chain, safe for concurrent use
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Token canonicalizes a single tag or color token:
// trimmed, lowercased, diacritics folded ("Café" -> "cafe").
// Null bytes from sloppy client serializers are dropped.
func Token(raw string) string {
	s := strings.TrimSpace(sanitizeString(raw))
	if s == "" {
		return ""
	}

	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}

	return strings.ToLower(s)
}

// Tokens canonicalizes a slice of tokens, dropping entries that
// normalize to empty. Always returns a non-nil slice.
func Tokens(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if t := Token(r); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Key canonicalizes an archetype or style key: like Token, but spaces
// and hyphens collapse to underscores ("Smart Casual" -> "smart_casual").
func Key(raw string) string {
	t := Token(raw)
	if t == "" {
		return ""
	}
	t = strings.ReplaceAll(t, "-", "_")
	return strings.Join(strings.Fields(t), "_")
}

// Phrase converts an underscore key back to a human-readable phrase
// ("smart_casual" -> "smart casual").
func Phrase(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// sanitizeString removes null bytes from strings, which can cause
// issues in databases and JSON parsing.
func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 { // null byte
			return -1 // drop it
		}
		return r
	}, s)
}
