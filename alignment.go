package g2p

import "sort"

// Pair relates one input character index to one output character index.
type Pair struct {
	In  int
	Out int
}

// Alignment is a sorted, many-to-many relation between input character
// positions and output character positions. It is the bidirectional
// bookkeeping that every [Transducer] call and every [CompositeTransducer]
// composition preserves: for every output character, the set of input
// characters that produced it, and vice versa.
//
// Invariants (checked by the property tests in alignment_test.go, not
// enforced defensively on every mutation — callers within this package
// are trusted to maintain them):
//
//   - Totality: every index in [0, inputLen) appears in at least one
//     pair, and the set of Out values equals {0, ..., outputLen-1}.
//   - Pairs are sorted lexicographically by (In, Out).
type Alignment struct {
	pairs []Pair
}

// NewIdentityAlignment returns the alignment {(i, i) : 0 <= i < n}, used
// to seed a Transducer pass and as the result of applying an empty rule
// list or a pass-through (non-word) token.
func NewIdentityAlignment(n int) Alignment {
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{In: i, Out: i}
	}
	return Alignment{pairs: pairs}
}

// NewAlignment builds an Alignment from a caller-provided pair list,
// sorting it into canonical order. Used by tests and by Mappings (such as
// unidecode and lexicon) that build their alignment directly rather than
// through the Transducer splice loop.
func NewAlignment(pairs []Pair) Alignment {
	cp := make([]Pair, len(pairs))
	copy(cp, pairs)
	sortPairs(cp)
	return Alignment{pairs: cp}
}

func sortPairs(p []Pair) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].In != p[j].In {
			return p[i].In < p[j].In
		}
		return p[i].Out < p[j].Out
	})
}

// Pairs returns the alignment's pairs in canonical sorted order. The
// returned slice is owned by the caller; mutating it does not affect the
// Alignment.
func (a Alignment) Pairs() []Pair {
	cp := make([]Pair, len(a.pairs))
	copy(cp, a.pairs)
	return cp
}

// Len reports the number of (input, output) pairs.
func (a Alignment) Len() int { return len(a.pairs) }

// InputIndices returns, for a given output index, the sorted, deduplicated
// set of input indices aligned to it.
func (a Alignment) InputIndices(outIdx int) []int {
	var out []int
	for _, p := range a.pairs {
		if p.Out == outIdx {
			out = append(out, p.In)
		}
	}
	return dedupSortedInts(out)
}

// OutputIndices returns, for a given input index, the sorted, deduplicated
// set of output indices it is aligned to.
func (a Alignment) OutputIndices(inIdx int) []int {
	var out []int
	for _, p := range a.pairs {
		if p.In == inIdx {
			out = append(out, p.Out)
		}
	}
	return dedupSortedInts(out)
}

func dedupSortedInts(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	var last int
	for i, x := range xs {
		if i == 0 || x != last {
			out = append(out, x)
		}
		last = x
	}
	return out
}

// ReplaceSpan implements the per-rule-match alignment update specified in
// the Transducer design: the output span [spanStart, spanEnd) is replaced
// by a string of length newLen. Every input index previously aligned to
// any output index in [spanStart, spanEnd) becomes aligned to every
// output index in the new span (a many-to-many block); pairs pointing
// past the span shift by newLen-(spanEnd-spanStart); pairs pointing
// before the span are untouched.
func (a Alignment) ReplaceSpan(spanStart, spanEnd, newLen int, matchedInputs []int) Alignment {
	shift := newLen - (spanEnd - spanStart)
	out := make([]Pair, 0, len(a.pairs)+newLen)
	for _, p := range a.pairs {
		switch {
		case p.Out >= spanStart && p.Out < spanEnd:
			// dropped: replaced below by the cross product.
		case p.Out >= spanEnd:
			out = append(out, Pair{In: p.In, Out: p.Out + shift})
		default:
			out = append(out, p)
		}
	}
	for _, in := range matchedInputs {
		for l := 0; l < newLen; l++ {
			out = append(out, Pair{In: in, Out: spanStart + l})
		}
	}
	sortPairs(out)
	return Alignment{pairs: out}
}

// InputsInSpan returns the deduplicated, sorted set of input indices
// currently aligned to any output index in [start, end). This is how the
// Transducer discovers "which input characters does this match span
// cover" before splicing a replacement in.
func (a Alignment) InputsInSpan(start, end int) []int {
	var ins []int
	for _, p := range a.pairs {
		if p.Out >= start && p.Out < end {
			ins = append(ins, p.In)
		}
	}
	return dedupSortedInts(ins)
}

// Compose computes the relational composition a ⋈ b: (i, k) is in the
// result iff there exists j with (i, j) in a and (j, k) in b. This is how
// a [CompositeTransducer] folds the per-stage alignments of a chain of
// Transducers into one end-to-end alignment, and how the Mapping Network
// folds a multi-hop path into a single conversion result.
//
// Composition is associative: (a.Compose(b)).Compose(c) and
// a.Compose(b.Compose(c)) produce the same pair set, verified in
// alignment_test.go's TestComposeAssociative.
func (a Alignment) Compose(b Alignment) Alignment {
	byMid := make(map[int][]int, len(b.pairs))
	for _, p := range b.pairs {
		byMid[p.In] = append(byMid[p.In], p.Out)
	}
	out := make([]Pair, 0, len(a.pairs))
	seen := make(map[Pair]bool, len(a.pairs))
	for _, p := range a.pairs {
		for _, k := range byMid[p.Out] {
			np := Pair{In: p.In, Out: k}
			if !seen[np] {
				seen[np] = true
				out = append(out, np)
			}
		}
	}
	sortPairs(out)
	return Alignment{pairs: out}
}

// Equal reports whether two alignments contain the same set of pairs,
// ignoring order (both are normalized to canonical order internally).
func (a Alignment) Equal(b Alignment) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for i := range a.pairs {
		if a.pairs[i] != b.pairs[i] {
			return false
		}
	}
	return true
}
