package g2p

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMapping(t *testing.T, cfg Config, rules []Rule) *Mapping {
	t.Helper()
	m, err := NewMapping(cfg, AbbreviationTable{}, rules)
	require.NoError(t, err)
	return m
}

func TestTransducerSingleRuleScan(t *testing.T) {
	cfg := Config{InLang: "a", OutLang: "b", CaseSensitive: true}
	m := newTestMapping(t, cfg, []Rule{{Input: "a", Output: "b"}})

	out, align := NewTransducer(m).Apply("banana")
	require.Equal(t, "bbnbnb", out)
	require.Equal(t, 6, align.Len())
}

func TestTransducerDelimitedWorkedExample(t *testing.T) {
	// worked example from the engine's design doc: hej -> HH EH Y
	cfg := Config{InLang: "dan", OutLang: "eng-arpabet", CaseSensitive: true, OutDelimiter: " "}
	m := newTestMapping(t, cfg, []Rule{
		{Input: "h", Output: "HH"},
		{Input: "e", Output: "EH"},
		{Input: "j", Output: "Y"},
	})

	out, _ := NewTransducer(m).Apply("hej")
	require.Equal(t, "HH EH Y", out)
}

func TestTransducerOutDelimiterTrimmedOnce(t *testing.T) {
	cfg := Config{InLang: "a", OutLang: "b", CaseSensitive: true, OutDelimiter: "-"}
	m := newTestMapping(t, cfg, []Rule{{Input: "a", Output: "x"}})

	out, _ := NewTransducer(m).Apply("a")
	require.Equal(t, "x", out)
}

func TestTransducerPreventFeedingBlocksRescan(t *testing.T) {
	cfg := Config{InLang: "a", OutLang: "b", CaseSensitive: true}
	m := newTestMapping(t, cfg, []Rule{
		{Input: "a", Output: "aa", PreventFeeding: true},
		{Input: "aa", Output: "Z"},
	})

	out, _ := NewTransducer(m).Apply("a")
	// the "aa" rule runs after "a" in source order, but the freshly
	// spliced "aa" is protected, so it must not collapse to "Z".
	require.Equal(t, "aa", out)
}

func TestTransducerAlignmentTracksSplice(t *testing.T) {
	cfg := Config{InLang: "a", OutLang: "b", CaseSensitive: true}
	m := newTestMapping(t, cfg, []Rule{{Input: "e", Output: "EH"}})

	out, align := NewTransducer(m).Apply("hej")
	require.Equal(t, "hEHj", out)
	// input index 1 ('e') maps to both new output positions
	require.Equal(t, []int{1, 2}, align.OutputIndices(1))
	require.Equal(t, []int{0}, align.OutputIndices(0))
	require.Equal(t, []int{3}, align.OutputIndices(2))
}

func TestTransducerNoMatchLeavesTextUnchanged(t *testing.T) {
	cfg := Config{InLang: "a", OutLang: "b", CaseSensitive: true}
	m := newTestMapping(t, cfg, []Rule{{Input: "z", Output: "Z"}})

	out, align := NewTransducer(m).Apply("hej")
	require.Equal(t, "hej", out)
	require.Equal(t, 3, align.Len())
}

func BenchmarkTransducerApply(b *testing.B) {
	cfg := Config{InLang: "a", OutLang: "b", CaseSensitive: true}
	m, err := NewMapping(cfg, AbbreviationTable{}, []Rule{
		{Input: "h", Output: "HH"},
		{Input: "e", Output: "EH"},
		{Input: "j", Output: "Y"},
	})
	if err != nil {
		b.Fatal(err)
	}
	tr := NewTransducer(m)
	for b.Loop() {
		tr.Apply("hej")
	}
}
