package g2p

// StageTrace records one stage of a CompositeTransducer's pass: the
// intermediate string after that stage's Mapping ran, and the
// alignment from that stage's input to that stage's output. The studio
// (out of scope for this engine) consumes this for its animated
// index-graph view; within this module it's exposed for debugging and
// tests.
type StageTrace struct {
	Mapping *Mapping
	Output  string
	Align   Alignment
}

// CompositeTransducer applies an ordered chain of Mappings in sequence,
// threading the output of one into the input of the next, and composes
// their per-stage alignments via relational composition (Alignment.
// Compose) into one end-to-end alignment.
type CompositeTransducer struct {
	mappings []*Mapping
}

// NewCompositeTransducer builds a CompositeTransducer over mappings, in
// the order they should be applied.
func NewCompositeTransducer(mappings []*Mapping) *CompositeTransducer {
	cp := make([]*Mapping, len(mappings))
	copy(cp, mappings)
	return &CompositeTransducer{mappings: cp}
}

// Apply runs the chain over input. An empty chain returns input
// unchanged with an identity alignment, per spec.
func (c *CompositeTransducer) Apply(input string) (string, Alignment) {
	out, _, align := c.ApplyTraced(input)
	return out, align
}

// ApplyTraced behaves like Apply but also returns the per-stage trace.
func (c *CompositeTransducer) ApplyTraced(input string) (string, []StageTrace, Alignment) {
	if len(c.mappings) == 0 {
		return input, nil, NewIdentityAlignment(len([]rune(input)))
	}

	current := input
	composed := NewIdentityAlignment(len([]rune(input)))
	traces := make([]StageTrace, 0, len(c.mappings))

	for _, m := range c.mappings {
		out, align := m.Apply(current)
		composed = composed.Compose(align)
		traces = append(traces, StageTrace{Mapping: m, Output: out, Align: align})
		current = out
	}

	return current, traces, composed
}
