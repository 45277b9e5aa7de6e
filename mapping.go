package g2p

import (
	"golang.org/x/text/unicode/norm"
)

// MappingType selects how a Mapping converts its input.
type MappingType string

const (
	// TypeRule is the default: an ordered list of context-sensitive
	// rewrite Rules, applied by a Transducer.
	TypeRule MappingType = "rule"
	// TypeUnidecode transliterates each input code point to a
	// well-known ASCII approximation.
	TypeUnidecode MappingType = "unidecode"
	// TypeLexicon looks the whole normalized input token up in a
	// precomputed dictionary.
	TypeLexicon MappingType = "lexicon"
)

// NormForm selects the Unicode normalization form applied to input
// before transduction. NormNone disables normalization and also
// disables grapheme-cluster-aware case preservation (see applyCase and
// textsegment.go). Rules match on code points under every NormForm.
type NormForm string

const (
	NormNone NormForm = "none"
	NormNFC  NormForm = "NFC"
	NormNFD  NormForm = "NFD"
	NormNFKC NormForm = "NFKC"
	NormNFKD NormForm = "NFKD"
)

func (n NormForm) normalizer() *norm.Form {
	var f norm.Form
	switch n {
	case NormNFC, "":
		f = norm.NFC
	case NormNFD:
		f = norm.NFD
	case NormNFKC:
		f = norm.NFKC
	case NormNFKD:
		f = norm.NFKD
	default:
		return nil
	}
	return &f
}

func (n NormForm) apply(s string) string {
	if n == NormNone {
		return s
	}
	f := n.normalizer()
	if f == nil {
		return s
	}
	return f.String(s)
}

// Config is a Mapping's configuration, decoded from a mapping
// configuration file entry (see config.MappingEntry) or built directly
// by callers.
type Config struct {
	InLang       string
	OutLang      string
	DisplayName  string
	LanguageName string
	Type         MappingType

	RuleOrdering   RuleOrdering
	CaseSensitive  bool
	PreserveCase   bool
	EscapeSpecial  bool
	NormForm       NormForm
	OutDelimiter   string // at most one character
	Reverse        bool
	PreventFeeding bool

	CaseEquivalencies map[rune][]rune

	Authors        []string
	AlignmentsPath string

	// LexiconEntries backs a TypeLexicon Mapping: normalized input
	// token -> output string.
	LexiconEntries map[string]string
}

// Validate checks the structural invariants spec'd for a Mapping's
// configuration, independent of its rule list.
func (c Config) Validate() error {
	loc := c.InLang + "->" + c.OutLang
	if c.InLang == "" || c.OutLang == "" {
		return ConfigError(loc, "in_lang and out_lang are required")
	}
	if c.CaseSensitive && c.PreserveCase {
		return ConfigError(loc, "case_sensitive and preserve_case are mutually exclusive")
	}
	if len([]rune(c.OutDelimiter)) > 1 {
		return ConfigError(loc, "out_delimiter must be at most one character")
	}
	switch c.Type {
	case TypeRule, TypeUnidecode, TypeLexicon, "":
	default:
		return ConfigError(loc, "unknown mapping type: "+string(c.Type))
	}
	switch c.RuleOrdering {
	case OrderAsWritten, OrderLongestFirst, "":
	default:
		return ConfigError(loc, "unknown rule_ordering: "+string(c.RuleOrdering))
	}
	switch c.NormForm {
	case NormNone, NormNFC, NormNFD, NormNFKC, NormNFKD, "":
	default:
		return ConfigError(loc, "unknown norm_form: "+string(c.NormForm))
	}
	return nil
}

// Mapping is an ordered collection of compiled Rules plus configuration.
// A Mapping is built once (via NewMapping) and is read-only thereafter;
// Transducers are cheap views over a Mapping and may be recreated per
// request.
type Mapping struct {
	cfg      Config
	rules    []*compiledRule
	abbr     AbbreviationTable
	alphabet map[rune]bool
}

// NewMapping compiles rawRules (in their given order, with abbr applied)
// against cfg, producing an immutable Mapping. Applies cfg.Reverse
// (swap rule_input/rule_output of every rule, and swap cfg.InLang/
// OutLang) and cfg.RuleOrdering before returning.
func NewMapping(cfg Config, abbr AbbreviationTable, rawRules []Rule) (*Mapping, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Reverse {
		cfg, rawRules = reverseConfigAndRules(cfg, rawRules)
	}

	compiled := make([]*compiledRule, len(rawRules))
	for i, r := range rawRules {
		cr, err := compileRule(r, cfg, abbr, i)
		if err != nil {
			return nil, err
		}
		compiled[i] = cr
	}

	switch cfg.RuleOrdering {
	case OrderLongestFirst:
		stableSortLongestFirst(compiled)
	default:
		// as-written: already in source order.
	}

	alphabet := make(map[rune]bool)
	for _, r := range rawRules {
		for _, rn := range r.Input {
			alphabet[rn] = true
		}
	}

	return &Mapping{cfg: cfg, rules: compiled, abbr: abbr, alphabet: alphabet}, nil
}

func reverseConfigAndRules(cfg Config, rules []Rule) (Config, []Rule) {
	cfg.InLang, cfg.OutLang = cfg.OutLang, cfg.InLang
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Input, r.Output = r.Output, r.Input
		out[i] = r
	}
	return cfg, out
}

func stableSortLongestFirst(rules []*compiledRule) {
	// insertion sort: stable, and the rule counts here are small
	// enough (hand-authored mapping tables, not generated corpora)
	// that O(n^2) is the right tradeoff against pulling in sort.Stable
	// for a key already known at construction time.
	for i := 1; i < len(rules); i++ {
		j := i
		for j > 0 && rules[j-1].orderingLen < rules[j].orderingLen {
			rules[j-1], rules[j] = rules[j], rules[j-1]
			j--
		}
	}
}

// Config returns the Mapping's configuration.
func (m *Mapping) Config() Config { return m.cfg }

// InLang returns the Mapping's source notation identifier.
func (m *Mapping) InLang() string { return m.cfg.InLang }

// OutLang returns the Mapping's target notation identifier.
func (m *Mapping) OutLang() string { return m.cfg.OutLang }

// RuleAlphabet returns the set of runes appearing in any rule's
// rule_input, used by the tokenizer to build a language's word
// character set.
func (m *Mapping) RuleAlphabet() map[rune]bool {
	// Rule sources aren't retained on compiledRule (only the compiled
	// pattern is), so the alphabet is derived from the Mapping's
	// original rawRules at NewMapping time and cached here instead.
	return m.alphabet
}

// Apply runs the Mapping against input, dispatching on cfg.Type, and
// returns the output string and its alignment. Normalization per
// cfg.NormForm is applied first, uniformly across all three types.
func (m *Mapping) Apply(input string) (string, Alignment) {
	normalized := m.cfg.NormForm.apply(input)
	switch m.cfg.Type {
	case TypeUnidecode:
		return applyUnidecode(normalized)
	case TypeLexicon:
		return applyLexicon(normalized, m.cfg.LexiconEntries)
	default:
		t := NewTransducer(m)
		return t.Apply(normalized)
	}
}

// applyLexicon looks input up in entries (exact match on the normalized
// token) and returns the recorded output. A miss returns input
// unchanged with an identity alignment, matching the "no runtime errors
// for rule mappings" policy extended to lexicon lookups. A hit's
// alignment pairs the first input character with every output
// character, since no per-letter alignment is available from a
// dictionary lookup.
func applyLexicon(input string, entries map[string]string) (string, Alignment) {
	output, ok := entries[input]
	if !ok || len([]rune(input)) == 0 {
		return input, NewIdentityAlignment(len([]rune(input)))
	}
	outLen := len([]rune(output))
	pairs := make([]Pair, outLen)
	for i := 0; i < outLen; i++ {
		pairs[i] = Pair{In: 0, Out: i}
	}
	return output, NewAlignment(pairs)
}
