package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var apostrophes = strings.NewReplacer("'", "", "’", "")

// CamelCase folds a human-readable label into a camel-case key:
// "Speed of Sound" → "speedOfSound", "NFPA Label" → "nfpaLabel",
// "Density (Liquid)" → "densityLiquid".
//
// Accents are stripped and apostrophes dropped before the label is split
// into words. Casers and transformers are stateful, so they are built per
// call.
func CamelCase(label string) string {
	deburr := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(deburr, label)
	if err != nil {
		folded = label
	}
	folded = apostrophes.Replace(folded)

	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	var b strings.Builder
	for i, w := range words(folded) {
		if i == 0 {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// words splits s on anything that is not a letter or digit, on
// lower→upper transitions, before the last capital of an acronym that
// runs into a word ("NFPALabel" → "NFPA", "Label") and between letters
// and digits.
func words(s string) []string {
	rs := []rune(s)
	var out []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, string(rs[start:end]))
		}
		start = -1
	}

	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := rs[i-1]
		split := unicode.IsLower(prev) && unicode.IsUpper(r) ||
			unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(rs) && unicode.IsLower(rs[i+1]) ||
			unicode.IsDigit(prev) != unicode.IsDigit(r)
		if split {
			flush(i)
			start = i
		}
	}
	flush(len(rs))
	return out
}

// SplitKeepTail splits text on delimiter into at most n parts, the last of
// which keeps the remainder joined. When text holds fewer than n-1
// delimiters an empty trailing part is appended, so a missing tail reads
// as "".
//
//	SplitKeepTail("250.14 m Ω", " ", 2)     → ["250.14", "m Ω"]
//	SplitKeepTail("1991", " in ", 2)        → ["1991", ""]
func SplitKeepTail(text, delimiter string, n int) []string {
	if n < 1 {
		n = 1
	}
	parts := strings.SplitN(text, delimiter, n)
	if len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}
