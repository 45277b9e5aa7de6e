// Package g2p implements the core of a rule-based grapheme-to-phoneme
// conversion engine: context-sensitive string rewriting that preserves a
// bidirectional alignment between every input character and every output
// character across arbitrarily many composed mappings.
//
// A [Mapping] is an ordered list of compiled [Rule] values plus
// configuration (case handling, normalization, rule ordering, feeding
// policy). A [Transducer] applies one Mapping to a string and returns the
// rewritten string together with an [Alignment] relating input positions
// to output positions. A [CompositeTransducer] chains several Transducers
// and composes their alignments. A [Network] is a directed multigraph of
// Mappings keyed by (in_lang, out_lang); [Network.FindPath] resolves the
// shortest chain of Mappings between two notations, and [Tokenize] splits
// text into the word/non-word runs that chain should be applied to.
//
// All types are safe for concurrent use once built: Rules and Mappings are
// immutable after compilation, and a [Network] only needs its internal
// mutex when mappings are being registered.
//
//	net := g2p.NewNetwork()
//	net.AddMapping(myMapping)
//	result, err := net.Convert(context.Background(), "hej", "dan", "eng-arpabet")
package g2p
