package g2p

import "context"

// DefaultNetwork is the package-level Network used by the convenience
// functions below, mirroring the teacher's defaultEngine/package-level
// function delegation pattern: most callers can use Convert/FindPath/
// Descendants/Tokenize directly, while tests and multi-tenant callers
// that need an isolated graph construct their own Network with
// NewNetwork.
var DefaultNetwork = NewNetwork()

// AddMapping installs m on the DefaultNetwork.
func AddMapping(m *Mapping) { DefaultNetwork.AddMapping(m) }

// Convert resolves a path from inLang to outLang on the DefaultNetwork
// and transduces text along it.
func Convert(ctx context.Context, text, inLang, outLang string) (ConversionResult, error) {
	return DefaultNetwork.Convert(ctx, text, inLang, outLang)
}

// FindPath resolves a path on the DefaultNetwork.
func FindPath(inLang, outLang string) ([]*Mapping, error) {
	return DefaultNetwork.FindPath(inLang, outLang)
}

// Descendants reports reachable notations from inLang on the
// DefaultNetwork.
func Descendants(inLang string) ([]string, error) {
	return DefaultNetwork.Descendants(inLang)
}

// Tokenize splits text for lang using the DefaultNetwork's rule
// alphabets.
func Tokenize(text, lang string) []Token {
	return DefaultNetwork.TokenizerFor(lang).Tokenize(text)
}
