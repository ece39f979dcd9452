// Package normalize turns free-text food names into canonical matching
// keys. Matching between ingredient names and classification names is
// insensitive to punctuation, case, and word order: "Red Onion",
// "onion, red", and "RED   ONION!!" all normalize to "onion red".
package normalize

import (
	"sort"
	"strings"
	"unicode"
)

// Normalize returns the canonical matching key for a raw name.
// It keeps only letters, digits, and whitespace, lowercases the result,
// and rejoins the words in sorted order separated by single spaces.
// Total and idempotent; an empty input yields an empty string.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	sort.Strings(words)
	return strings.Join(words, " ")
}
