package g2p

import "github.com/rivo/uniseg"

// segment splits s into the units applyCase carries case across:
// extended grapheme clusters when graphemeAware is true (i.e. the
// Mapping's norm_form != none), or individual code points otherwise.
// Grapheme clustering uses rivo/uniseg, the same package present
// (indirectly) across the example corpus for Unicode-width-aware
// terminal rendering. Only preserve_case uses these clusters: rule
// matching, splicing and alignment indices in the Transducer work on
// code points whatever the norm_form.
func segment(s string, graphemeAware bool) []string {
	if s == "" {
		return nil
	}
	if !graphemeAware {
		runes := []rune(s)
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	}
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// joinSegments concatenates segments produced by segment back into a
// string.
func joinSegments(segs []string) string {
	var n int
	for _, s := range segs {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for _, s := range segs {
		buf = append(buf, s...)
	}
	return string(buf)
}
