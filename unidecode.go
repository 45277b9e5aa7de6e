package g2p

import "github.com/cv-labs/g2p/internal/unidecode"

// applyUnidecode implements the Mapping type "unidecode": each input
// code point is transliterated independently to its ASCII
// approximation, and the alignment pairs that input code point's index
// with every output character its transliteration produced.
func applyUnidecode(input string) (string, Alignment) {
	runes := []rune(input)
	var out []rune
	var pairs []Pair
	outIdx := 0
	for i, r := range runes {
		repl := unidecode.Transliterate(r)
		for range []rune(repl) {
			pairs = append(pairs, Pair{In: i, Out: outIdx})
			outIdx++
		}
		out = append(out, []rune(repl)...)
	}
	if len(runes) == 0 {
		return "", NewIdentityAlignment(0)
	}
	return string(out), NewAlignment(pairs)
}
