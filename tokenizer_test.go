package g2p

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeClosureProperty(t *testing.T) {
	tok := NewTokenizer(map[rune]bool{'h': true, 'e': true, 'l': true, 'o': true})
	text := "hello, world! don't stop."
	tokens := tok.Tokenize(text)

	var rebuilt string
	for _, tk := range tokens {
		rebuilt += tk.Text
	}
	require.Equal(t, text, rebuilt)
}

func TestTokenizeAlternatesWordAndNonWord(t *testing.T) {
	tok := NewTokenizer(map[rune]bool{'h': true, 'i': true})
	tokens := tok.Tokenize("hi there hi")
	require.True(t, tokens[0].IsWord)
	require.Equal(t, "hi", tokens[0].Text)
	require.False(t, tokens[1].IsWord)
}

func TestTokenizeLanguageSpecificApostrophe(t *testing.T) {
	mohawkChars := map[rune]bool{}
	for _, r := range "Kanienkéha'" {
		mohawkChars[r] = true
	}
	tok := NewTokenizer(mohawkChars)
	tokens := tok.Tokenize("Kanien'kéha")
	require.Len(t, tokens, 1)
	require.True(t, tokens[0].IsWord)

	englishChars := map[rune]bool{}
	for _, r := range "dontsop" {
		englishChars[r] = true
	}
	engTok := NewTokenizer(englishChars)
	engTokens := engTok.Tokenize("don't stop")
	require.Greater(t, len(engTokens), 1)
}

func TestTokenizeEmptyString(t *testing.T) {
	tok := NewTokenizer(map[rune]bool{'a': true})
	require.Nil(t, tok.Tokenize(""))
}
