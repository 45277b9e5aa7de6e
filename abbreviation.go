package g2p

import "strings"

// AbbreviationTable maps a short name to its ordered list of expansion
// literals. A rule's input/context/output strings may reference
// {NAME}, which is expanded at compile time into a non-capturing
// alternation over the listed literals. Built once per Mapping and
// immutable thereafter, mirroring the teacher's custom-override maps
// that are populated once and consulted read-only from then on.
type AbbreviationTable struct {
	entries map[string][]string
}

// NewAbbreviationTable builds a table from name -> expansions.
func NewAbbreviationTable(entries map[string][]string) AbbreviationTable {
	cp := make(map[string][]string, len(entries))
	for k, v := range entries {
		vv := make([]string, len(v))
		copy(vv, v)
		cp[k] = vv
	}
	return AbbreviationTable{entries: cp}
}

// Lookup returns the expansion list for name, and whether it exists.
func (t AbbreviationTable) Lookup(name string) ([]string, bool) {
	v, ok := t.entries[name]
	return v, ok
}

// expandPattern replaces every {NAME} in s with a non-capturing
// alternation "(?:alt1|alt2|...)" over name's expansions, for use in a
// regex pattern (rule_input, context_before, context_after). Returns a
// CompileError naming the unknown abbreviation when {NAME} has no entry.
func (t AbbreviationTable) expandPattern(s, location string) (string, error) {
	return expandBraces(s, func(name string) (string, error) {
		alts, ok := t.entries[name]
		if !ok {
			return "", CompileError(location, "unknown abbreviation "+name)
		}
		escaped := make([]string, len(alts))
		for i, a := range alts {
			escaped[i] = regexEscape(a)
		}
		return "(?:" + strings.Join(escaped, "|") + ")", nil
	})
}

// expandLiteral replaces every {NAME} in s with the first (longest-
// preferred callers pass a pre-sorted list) literal expansion, for use in
// a rule's output template, which is never itself treated as a pattern.
// Abbreviations in output select their first listed alternative: the
// source spec does not define which alternative an output-side
// abbreviation should resolve to when the matched input alternative
// varies, so this engine picks the table's first entry deterministically.
func (t AbbreviationTable) expandLiteral(s, location string) (string, error) {
	return expandBraces(s, func(name string) (string, error) {
		alts, ok := t.entries[name]
		if !ok {
			return "", CompileError(location, "unknown abbreviation "+name)
		}
		if len(alts) == 0 {
			return "", nil
		}
		return alts[0], nil
	})
}

// longestExpansion returns the length, in runes, of s with every {NAME}
// replaced by its longest listed alternative. Used to compute the
// "effective match length" for apply-longest-first ordering.
func (t AbbreviationTable) longestExpansion(s string) int {
	out, _ := expandBraces(s, func(name string) (string, error) {
		alts, ok := t.entries[name]
		if !ok || len(alts) == 0 {
			return "", nil
		}
		longest := alts[0]
		for _, a := range alts[1:] {
			if len([]rune(a)) > len([]rune(longest)) {
				longest = a
			}
		}
		return longest, nil
	})
	return len([]rune(out))
}

// expandBraces scans s for {NAME} tokens and replaces each via resolve.
func expandBraces(s string, resolve func(name string) (string, error)) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '{' {
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				b.WriteByte(s[i])
				i++
				continue
			}
			name := s[i+1 : i+end]
			repl, err := resolve(name)
			if err != nil {
				return "", err
			}
			b.WriteString(repl)
			i += end + 1
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), nil
}

// regexEscape escapes regex metacharacters in a literal, for inlining
// user-supplied literals into a compiled pattern (abbreviation
// expansions, and rule_input/contexts under escape_special).
func regexEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
