package g2p

// Transducer applies one Mapping to a string, producing output plus a
// per-character Alignment. It is a cheap view over a Mapping — holding
// only a pointer to it — and may be recreated per request without cost,
// matching the Mapping lifecycle described for this engine: built once,
// read many times.
//
// Pair.In/Pair.Out indices produced by a Transducer are rune (code
// point) offsets, not byte offsets and not extended-grapheme-cluster
// indices: the regex engine backing rule matching (dlclark/regexp2)
// indexes matches by rune position, and threading grapheme-cluster
// indices through its match results would require re-deriving cluster
// boundaries after every splice. Grapheme-cluster segmentation
// (textsegment.go) is used only for case preservation (applyCase);
// tokenization and the splice loop both work on code points.
type Transducer struct {
	mapping *Mapping
}

// NewTransducer returns a Transducer for m.
func NewTransducer(m *Mapping) *Transducer {
	return &Transducer{mapping: m}
}

// Apply runs the Transducer's one-pass rewrite algorithm over input,
// which the caller has already normalized per the Mapping's norm_form
// (see Mapping.Apply). It:
//
//  1. Seeds a working rune buffer W from input, a protected-position
//     mask P (all unset), and an identity Alignment.
//  2. Iterates rules in their compile-time order (source order, or the
//     apply-longest-first order established by NewMapping). For each
//     rule, repeatedly finds the leftmost non-protected-overlapping
//     match, splices in its replacement, updates P and the Alignment,
//     and continues scanning from just past the replacement — until no
//     more matches are found for that rule.
//  3. Trims one trailing out_delimiter, if configured.
func (t *Transducer) Apply(input string) (string, Alignment) {
	cfg := t.mapping.cfg
	w := []rune(input)
	protected := make([]bool, len(w))
	align := NewIdentityAlignment(len(w))

	delim := []rune(cfg.OutDelimiter)

	for _, rule := range t.mapping.rules {
		pos := 0
		for pos <= len(w) {
			m, err := rule.findFrom(w, pos)
			if err != nil || m == nil {
				break
			}
			start, end := m.Index, m.Index+m.Length
			if spanOverlapsProtected(protected, start, end) {
				pos = start + 1
				continue
			}

			matched := string(w[start:end])
			repl := rule.replacement
			if rule.preserveCase {
				repl = applyCase(matched, repl, cfg.NormForm != NormNone)
			}
			replRunes := []rune(repl)
			if len(delim) > 0 {
				replRunes = append(replRunes, delim...)
			}

			matchedInputs := align.InputsInSpan(start, end)
			align = align.ReplaceSpan(start, end, len(replRunes), matchedInputs)

			newW := make([]rune, 0, len(w)-(end-start)+len(replRunes))
			newW = append(newW, w[:start]...)
			newW = append(newW, replRunes...)
			newW = append(newW, w[end:]...)

			newProtected := make([]bool, len(newW))
			copy(newProtected, protected[:start])
			protect := rule.preventFeeding
			for i := 0; i < len(replRunes); i++ {
				// out_delimiter is treated as a protected position: the
				// safe reading of an otherwise-ambiguous spec (see
				// DESIGN.md Open Question #3).
				newProtected[start+i] = protect
			}
			copy(newProtected[start+len(replRunes):], protected[end:])

			w = newW
			protected = newProtected

			next := start + len(replRunes)
			if m.Length == 0 && len(replRunes) == 0 {
				// A zero-width match with an empty replacement would
				// otherwise never advance; force progress.
				next = start + 1
			}
			pos = next
		}
	}

	if len(delim) > 0 && len(w) >= len(delim) && string(w[len(w)-len(delim):]) == string(delim) {
		trimTo := len(w) - len(delim)
		align = trimAlignmentOutput(align, trimTo)
		w = w[:trimTo]
	}

	return string(w), align
}

func spanOverlapsProtected(protected []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if i < len(protected) && protected[i] {
			return true
		}
	}
	return false
}

// trimAlignmentOutput drops every pair whose output index is >= trimTo,
// used to trim the final out_delimiter instance from an Alignment
// alongside the output string.
func trimAlignmentOutput(a Alignment, trimTo int) Alignment {
	pairs := a.Pairs()
	kept := pairs[:0]
	for _, p := range pairs {
		if p.Out < trimTo {
			kept = append(kept, p)
		}
	}
	return NewAlignment(kept)
}
