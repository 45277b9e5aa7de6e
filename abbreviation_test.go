package g2p

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbbreviationExpandPatternAlternation(t *testing.T) {
	tbl := NewAbbreviationTable(map[string][]string{"VOWEL": {"a", "e", "i", "o", "u"}})
	out, err := tbl.expandPattern("{VOWEL}", "loc")
	require.NoError(t, err)
	require.Equal(t, "(?:a|e|i|o|u)", out)
}

func TestAbbreviationExpandPatternUnknownName(t *testing.T) {
	tbl := NewAbbreviationTable(nil)
	_, err := tbl.expandPattern("{VOWEL}", "loc")
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, KindCompile, ee.Kind)
}

func TestAbbreviationExpandLiteralUsesFirstAlternative(t *testing.T) {
	tbl := NewAbbreviationTable(map[string][]string{"GREETING": {"hi", "hello"}})
	out, err := tbl.expandLiteral("{GREETING}!", "loc")
	require.NoError(t, err)
	require.Equal(t, "hi!", out)
}

func TestAbbreviationLongestExpansion(t *testing.T) {
	tbl := NewAbbreviationTable(map[string][]string{"VOWEL": {"a", "oo"}})
	require.Equal(t, 2, tbl.longestExpansion("{VOWEL}"))
	require.Equal(t, 3, tbl.longestExpansion("x{VOWEL}"))
}

func TestAbbreviationTableIsolatesCopies(t *testing.T) {
	src := map[string][]string{"A": {"1"}}
	tbl := NewAbbreviationTable(src)
	src["A"][0] = "mutated"

	alts, ok := tbl.Lookup("A")
	require.True(t, ok)
	require.Equal(t, "1", alts[0])
}

func TestRegexEscapeMetacharacters(t *testing.T) {
	require.Equal(t, `\.\*`, regexEscape(".*"))
	require.Equal(t, "abc", regexEscape("abc"))
}
