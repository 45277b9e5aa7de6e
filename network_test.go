package g2p

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworkFindPathDirectEdge(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))

	path, err := n.FindPath("a", "b")
	require.NoError(t, err)
	require.Len(t, path, 1)
}

func TestNetworkFindPathMultiHop(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))
	n.AddMapping(newTestMapping(t, Config{InLang: "b", OutLang: "c", CaseSensitive: true}, nil))

	path, err := n.FindPath("a", "c")
	require.NoError(t, err)
	require.Len(t, path, 2)
	require.Equal(t, "a", path[0].InLang())
	require.Equal(t, "c", path[1].OutLang())
}

func TestNetworkFindPathSameLangIsEmptyPath(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))

	path, err := n.FindPath("a", "a")
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestNetworkFindPathUnknownLangIsLookupError(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))

	_, err := n.FindPath("a", "zzz")
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, KindLookup, ee.Kind)
}

func TestNetworkFindPathNoConnectionIsNoPathError(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))
	n.AddMapping(newTestMapping(t, Config{InLang: "c", OutLang: "d", CaseSensitive: true}, nil))

	_, err := n.FindPath("a", "d")
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, KindNoPath, ee.Kind)
}

func TestNetworkFindPathHandlesCycles(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))
	n.AddMapping(newTestMapping(t, Config{InLang: "b", OutLang: "a", CaseSensitive: true}, nil))
	n.AddMapping(newTestMapping(t, Config{InLang: "b", OutLang: "c", CaseSensitive: true}, nil))

	path, err := n.FindPath("a", "c")
	require.NoError(t, err)
	require.Len(t, path, 2)
}

func TestNetworkDescendants(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))
	n.AddMapping(newTestMapping(t, Config{InLang: "b", OutLang: "c", CaseSensitive: true}, nil))

	desc, err := n.Descendants("a")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, desc)
}

func TestNetworkAddMappingReplacesExistingEdge(t *testing.T) {
	n := NewNetwork()
	first := newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "x", Output: "1"}})
	second := newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "x", Output: "2"}})
	n.AddMapping(first)
	n.AddMapping(second)

	path, err := n.FindPath("a", "b")
	require.NoError(t, err)
	require.Len(t, path, 1)
	out, _ := path[0].Apply("x")
	require.Equal(t, "2", out)
}

func TestNetworkConvertEndToEnd(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "dan", OutLang: "dan-ipa", CaseSensitive: true},
		[]Rule{{Input: "h", Output: "h"}, {Input: "e", Output: "e"}, {Input: "j", Output: "j"}}))
	n.AddMapping(newTestMapping(t, Config{InLang: "dan-ipa", OutLang: "eng-arpabet", CaseSensitive: true, OutDelimiter: " "},
		[]Rule{{Input: "h", Output: "HH"}, {Input: "e", Output: "EH"}, {Input: "j", Output: "Y"}}))

	result, err := n.Convert(context.Background(), "hej", "dan", "eng-arpabet")
	require.NoError(t, err)
	require.Equal(t, "HH EH Y", result.Output)
	require.Len(t, result.Stages, 2)
}

func TestNetworkConvertNonWordTokensPassThrough(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "h", Output: "H"}}))

	result, err := n.Convert(context.Background(), "h h", "a", "b")
	require.NoError(t, err)
	require.Equal(t, "H H", result.Output)
}

func TestNetworkConvertRespectsContextCancellation(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "h", Output: "H"}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := n.Convert(ctx, "hello world", "a", "b")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNetworkTokenizerForUnionsRuleAlphabets(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "moh", OutLang: "moh-ipa", CaseSensitive: true}, []Rule{{Input: "k", Output: "k"}}))
	n.AddWordCharOverride("moh", []rune{'\''})

	tok := n.TokenizerFor("moh")
	tokens := tok.Tokenize("k'k")
	require.Len(t, tokens, 1)
	require.True(t, tokens[0].IsWord)
}

func TestNetworkGenerateMappingComposesPath(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "x", Output: "y"}}))
	n.AddMapping(newTestMapping(t, Config{InLang: "b", OutLang: "c", CaseSensitive: true}, []Rule{{Input: "y", Output: "z"}}))

	generated, err := n.GenerateMapping("a", "c", ComposeDirect)
	require.NoError(t, err)
	require.Equal(t, "a", generated.InLang())
	require.Equal(t, "c", generated.OutLang())

	out, _ := generated.Apply("x")
	require.Equal(t, "z", out)

	// generated mapping is installed directly on the network
	path, err := n.FindPath("a", "c")
	require.NoError(t, err)
	require.Len(t, path, 1)
}

func TestNetworkGenerateMappingIPAModeSuffixesOutLang(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "x", Output: "y"}}))

	generated, err := n.GenerateMapping("a", "b", ComposeIPA)
	require.NoError(t, err)
	require.Equal(t, "b-ipa", generated.OutLang())
	require.True(t, generated.Config().CaseSensitive)
}

func TestNetworkAllMappingsDeterministicOrder(t *testing.T) {
	n := NewNetwork()
	n.AddMapping(newTestMapping(t, Config{InLang: "z", OutLang: "y", CaseSensitive: true}, nil))
	n.AddMapping(newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, nil))

	all := n.AllMappings()
	require.Len(t, all, 2)
	require.Equal(t, "a", all[0].InLang())
	require.Equal(t, "z", all[1].InLang())
}
