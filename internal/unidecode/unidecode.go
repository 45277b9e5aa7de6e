// Package unidecode provides a best-effort ASCII transliteration for
// Unicode text, used by Mappings of type "unidecode". It is adapted from
// the teacher repository's internal/inflect package: that package held
// several large immutable lookup tables (currency symbols, roman
// numerals, irregular verb forms) behind small lookup functions; this
// package keeps the same shape — big tables, thin lookup — with new
// table content aimed at codepoint-to-ASCII transliteration instead of
// English word inflection.
package unidecode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks via NFD decomposition,
// following the same golang.org/x/text/{transform,runes,unicode/norm}
// cascade the teacher's rails.go used for Humanize/Tableize-style
// normalization.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Transliterate converts one rune to its ASCII approximation using:
//  1. the direct table (latinTable, symbolTable, currencyTable), in
//     that order;
//  2. on a table miss, diacritic stripping via stripDiacritics, which
//     handles most Latin-script-with-accents input without a table
//     entry of its own;
//  3. "?" as the final fallback, matching the documented behavior of
//     transliteration systems for characters with no known mapping.
func Transliterate(r rune) string {
	if r < 128 {
		return string(r)
	}
	if v, ok := latinTable[r]; ok {
		return v
	}
	if v, ok := symbolTable[r]; ok {
		return v
	}
	if v, ok := currencyTable[r]; ok {
		return v
	}
	out, _, err := transform.String(stripDiacritics, string(r))
	if err == nil && out != "" && !strings.ContainsRune(out, r) {
		allASCII := true
		for _, rr := range out {
			if rr >= 128 {
				allASCII = false
				break
			}
		}
		if allASCII {
			return out
		}
	}
	return "?"
}

// String transliterates every rune of s, concatenating the results. It
// does not itself produce an alignment; callers needing a per-character
// alignment should transliterate rune by rune and track byte offsets
// themselves (see applyUnidecode in the root package's unidecode.go).
func String(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(Transliterate(r))
	}
	return b.String()
}
