package g2p

import (
	"context"
	"sort"
	"sync"
)

// ConversionResult is the outcome of Network.Convert: the transduced
// text, its end-to-end alignment back to the original input, and
// (when available) a per-stage trace for UIs like the reference
// studio's animated index-graph view.
type ConversionResult struct {
	Output string
	Align  Alignment
	// Stages holds the per-Mapping intermediate string/alignment trace,
	// populated only when the input tokenized to a single word token:
	// merging per-stage traces across multiple word/non-word tokens
	// would require tracking per-stage offsets per token, which no
	// testable property in this engine's spec depends on, so the
	// common single-word conversion case is traced precisely and the
	// general multi-token case is left untraced rather than
	// half-implemented.
	Stages []StageTrace
}

// Network is a directed multigraph of Mappings keyed by (in_lang,
// out_lang): nodes are notation identifiers, edges are Mappings. It
// follows the same shape as the teacher's Engine type — mutable state
// behind a sync.RWMutex, safe for concurrent use once mappings stop
// being registered — because a Network, like an Engine, is built once
// (at load) and then read from many concurrent conversions.
type Network struct {
	mu             sync.RWMutex
	nodes          map[string]bool
	edges          map[string]map[string]*Mapping // edges[inLang][outLang]
	wordOverrides  map[string]map[rune]bool        // per-language extra word characters
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{
		nodes:         make(map[string]bool),
		edges:         make(map[string]map[string]*Mapping),
		wordOverrides: make(map[string]map[rune]bool),
	}
}

// AddMapping installs m as an edge, replacing any existing edge with
// the same (in_lang, out_lang) pair (a Network's edges have unique
// identity per spec.md §3). O(1).
func (n *Network) AddMapping(m *Mapping) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nodes[m.InLang()] = true
	n.nodes[m.OutLang()] = true
	if n.edges[m.InLang()] == nil {
		n.edges[m.InLang()] = make(map[string]*Mapping)
	}
	n.edges[m.InLang()][m.OutLang()] = m
}

// AddWordCharOverride records extra characters that belong to word runs
// for lang, beyond whatever appears in that language's rule alphabets
// (e.g. an apostrophe that's linguistically part of words in an
// orthography whose rules never happen to mention it directly).
func (n *Network) AddWordCharOverride(lang string, chars []rune) {
	n.mu.Lock()
	defer n.mu.Unlock()
	set := n.wordOverrides[lang]
	if set == nil {
		set = make(map[rune]bool)
		n.wordOverrides[lang] = set
	}
	for _, c := range chars {
		set[c] = true
	}
}

// FindPath returns the shortest chain of Mappings (by edge count) from
// inLang to outLang, breaking ties by a deterministic (alphabetical)
// edge order. Returns NoPathError when outLang is unreachable, and
// LookupError when either notation is entirely unknown to the Network.
func (n *Network) FindPath(inLang, outLang string) ([]*Mapping, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.nodes[inLang] {
		return nil, LookupError(inLang)
	}
	if !n.nodes[outLang] {
		return nil, LookupError(outLang)
	}
	if inLang == outLang {
		return nil, nil
	}

	type queued struct {
		node string
		path []*Mapping
	}
	visited := map[string]bool{inLang: true}
	queue := []queued{{node: inLang}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range sortedKeys(n.edges[cur.node]) {
			m := n.edges[cur.node][next]
			path := make([]*Mapping, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = m

			if next == outLang {
				return path, nil
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, queued{node: next, path: path})
			}
		}
	}
	return nil, NoPathError(inLang, outLang)
}

// Descendants returns the set of notations reachable from inLang
// (including inLang itself), sorted for deterministic output.
func (n *Network) Descendants(inLang string) ([]string, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.nodes[inLang] {
		return nil, LookupError(inLang)
	}

	visited := map[string]bool{inLang: true}
	queue := []string{inLang}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range sortedKeys(n.edges[cur]) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	out := make([]string, 0, len(visited))
	for k := range visited {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// TokenizerFor builds the word-character-driven Tokenizer for lang: the
// union of every rule_input alphabet among Mappings whose in_lang ==
// lang, plus any override characters registered via
// AddWordCharOverride.
func (n *Network) TokenizerFor(lang string) *Tokenizer {
	n.mu.RLock()
	defer n.mu.RUnlock()

	chars := make(map[rune]bool)
	for _, m := range n.edges[lang] {
		for r := range m.RuleAlphabet() {
			chars[r] = true
		}
	}
	for r := range n.wordOverrides[lang] {
		chars[r] = true
	}
	return NewTokenizer(chars)
}

// Convert resolves a path from inLang to outLang, tokenizes text for
// inLang, transduces each word token through the resolved
// CompositeTransducer, passes non-word tokens through untouched, and
// returns the concatenated output with its end-to-end alignment.
func (n *Network) Convert(ctx context.Context, text, inLang, outLang string) (ConversionResult, error) {
	path, err := n.FindPath(inLang, outLang)
	if err != nil {
		return ConversionResult{}, err
	}
	tok := n.TokenizerFor(inLang)
	tokens := tok.Tokenize(text)
	if len(tokens) == 0 {
		return ConversionResult{Output: "", Align: NewIdentityAlignment(0)}, nil
	}

	ct := NewCompositeTransducer(path)

	var outBuilder []rune
	var merged []Pair
	var stages []StageTrace
	inOffset, outOffset := 0, 0

	for ti, token := range tokens {
		select {
		case <-ctx.Done():
			return ConversionResult{}, ctx.Err()
		default:
		}

		runes := []rune(token.Text)
		var out string
		var align Alignment
		var trace []StageTrace
		if token.IsWord {
			out, trace, align = ct.ApplyTraced(token.Text)
		} else {
			out = token.Text
			align = NewIdentityAlignment(len(runes))
		}
		if len(tokens) == 1 {
			stages = trace
		}

		for _, p := range align.Pairs() {
			merged = append(merged, Pair{In: p.In + inOffset, Out: p.Out + outOffset})
		}
		outBuilder = append(outBuilder, []rune(out)...)
		inOffset += len(runes)
		outOffset += len([]rune(out))
		_ = ti
	}

	return ConversionResult{
		Output: string(outBuilder),
		Align:  NewAlignment(merged),
		Stages: stages,
	}, nil
}

// GenerateMode selects how Network.GenerateMapping flattens an existing
// path into a new direct edge.
type GenerateMode int

const (
	// ComposeDirect flattens the path into a rule-type Mapping whose
	// rules are literal single-character input->output pairs observed by
	// running the path over the first Mapping's rule alphabet; characters
	// the path leaves unchanged get no rule.
	ComposeDirect GenerateMode = iota
	// ComposeIPA behaves like ComposeDirect but names the generated
	// edge's out_lang with an "-ipa" suffix and forces case_sensitive,
	// for the common case of pre-generating a derived IPA mapping.
	ComposeIPA
)

// GenerateMapping composes the path from inLang to outLang into one new
// Mapping edge and installs it on the Network, per spec.md §6's
// "generate_mapping" auxiliary operation.
func (n *Network) GenerateMapping(inLang, outLang string, mode GenerateMode) (*Mapping, error) {
	path, err := n.FindPath(inLang, outLang)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, ConfigError(inLang+"->"+outLang, "nothing to compose: notations are identical")
	}

	alphabet := make(map[rune]bool)
	for r := range path[0].RuleAlphabet() {
		alphabet[r] = true
	}

	ct := NewCompositeTransducer(path)
	var rules []Rule
	seen := make(map[string]bool)
	for r := range alphabet {
		in := string(r)
		out, _ := ct.Apply(in)
		if out == in || seen[in] {
			continue
		}
		seen[in] = true
		rules = append(rules, Rule{Input: in, Output: out})
	}

	newOutLang := outLang
	caseSensitive := false
	if mode == ComposeIPA {
		newOutLang = outLang + "-ipa"
		caseSensitive = true
	}

	cfg := Config{
		InLang:        inLang,
		OutLang:       newOutLang,
		Type:          TypeRule,
		RuleOrdering:  OrderLongestFirst,
		CaseSensitive: caseSensitive,
	}
	generated, err := NewMapping(cfg, AbbreviationTable{}, rules)
	if err != nil {
		return nil, err
	}
	n.AddMapping(generated)
	return generated, nil
}

// AllMappings returns every Mapping registered on the Network, in a
// deterministic (sorted by in_lang, then out_lang) order, for callers
// like internal/index that need to enumerate the whole graph.
func (n *Network) AllMappings() []*Mapping {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []*Mapping
	for _, inLang := range sortedNodeKeys(n.edges) {
		for _, outLang := range sortedKeys(n.edges[inLang]) {
			out = append(out, n.edges[inLang][outLang])
		}
	}
	return out
}

func sortedNodeKeys(m map[string]map[string]*Mapping) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]*Mapping) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
