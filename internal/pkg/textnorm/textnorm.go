// Package textnorm folds Bosnian text for search and slug generation.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// đ has no canonical decomposition, so it is spelled out before the
// combining marks are stripped.
var digraphs = strings.NewReplacer("đ", "dj", "Đ", "dj")

func newFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold lowercases s and removes diacritics: č/ć→c, š→s, ž→z, đ→dj.
func Fold(s string) string {
	s = digraphs.Replace(s)
	folded, _, err := transform.String(newFolder(), s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Contains reports whether needle occurs in haystack, ignoring case and
// diacritics. Whitespace runs in the needle match any whitespace run.
func Contains(haystack, needle string) bool {
	needle = strings.Join(strings.Fields(Fold(needle)), " ")
	if needle == "" {
		return true
	}
	return strings.Contains(strings.Join(strings.Fields(Fold(haystack)), " "), needle)
}

// Slugify turns a display name into a URL slug.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range Fold(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
