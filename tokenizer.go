package g2p

import "unicode/utf8"

// Token is one run produced by a Tokenizer: either a word run (to be
// fed through the conversion chain) or a non-word run (passed through
// untouched). Concatenating every Token.Text in order reproduces the
// original text exactly (the tokenization closure property).
type Token struct {
	Text   string
	IsWord bool
}

// Tokenizer splits text into alternating word/non-word runs, driven by
// a language-specific "word character set" rather than a fixed
// definition of punctuation: a rune belongs to a word run iff it's in
// WordChars, so an orthography where e.g. an apostrophe is part of
// words (Kanien'kéha in Mohawk) tokenizes differently than one where it
// isn't (English).
type Tokenizer struct {
	WordChars map[rune]bool
}

// NewTokenizer builds a Tokenizer over the given word character set.
func NewTokenizer(wordChars map[rune]bool) *Tokenizer {
	return &Tokenizer{WordChars: wordChars}
}

// Tokenize splits text into maximal word/non-word runs.
func (t *Tokenizer) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	var tokens []Token
	var cur []byte
	curIsWord := false
	started := false

	flush := func() {
		if started && len(cur) > 0 {
			tokens = append(tokens, Token{Text: string(cur), IsWord: curIsWord})
		}
		cur = cur[:0]
	}

	for _, r := range text {
		isWord := t.WordChars[r]
		if started && isWord != curIsWord {
			flush()
		}
		curIsWord = isWord
		started = true
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		cur = append(cur, buf[:n]...)
	}
	flush()
	return tokens
}
