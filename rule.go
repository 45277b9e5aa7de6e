package g2p

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// RuleOrdering selects how a Mapping's rules are sequenced at compile
// time.
type RuleOrdering string

const (
	// OrderAsWritten applies rules in their source order.
	OrderAsWritten RuleOrdering = "as-written"
	// OrderLongestFirst stably sorts rules by the effective match
	// length of rule_input (abbreviations expanded to their longest
	// alternative), descending; ties keep source order.
	OrderLongestFirst RuleOrdering = "apply-longest-first"
)

// Rule is the atomic context-sensitive rewrite unit: rule_input ->
// rule_output / context_before _ context_after. Rules are built once at
// Mapping-compile time and are immutable thereafter; the compiled
// matcher is never recompiled per conversion.
type Rule struct {
	Input          string
	Output         string
	ContextBefore  string
	ContextAfter   string
	PreventFeeding bool
	Comment        string

	// IntermediateForm is carried on the Rule for callers that record a
	// placeholder form alongside the final output. compileRule and the
	// Transducer do not read it; prevent_feeding is enforced through the
	// protected-position mask alone.
	IntermediateForm string

	compiled    *compiledRule
	sourceIndex int
}

// compiledRule holds the derived, execution-time form of a Rule: the
// anchored lookaround regex, the literal replacement, and the ordering
// key computed from the enclosing Mapping's rule_ordering policy.
type compiledRule struct {
	re             *regexp2.Regexp
	replacement    string
	caseSensitive  bool
	preserveCase   bool
	orderingLen    int // effective match length, for apply-longest-first
	sourceIndex    int
	preventFeeding bool
}

// compileRule turns one Rule into a compiledRule, given the enclosing
// Mapping's case/escape configuration and abbreviation table.
//
// The compiled regex uses regexp2's native lookaround support: context
// before becomes a variable-length lookbehind group "(?<=...)" and
// context after becomes a lookahead group "(?=...)". Go's standard
// library regexp (RE2) cannot express lookaround at all, which is why
// this engine binds to dlclark/regexp2 instead (see DESIGN.md).
func compileRule(r Rule, cfg Config, abbr AbbreviationTable, sourceIndex int) (*compiledRule, error) {
	loc := ruleLocation(cfg, sourceIndex)
	if strings.TrimSpace(r.Input) == "" {
		return nil, CompileError(loc, "rule_input must be non-empty")
	}
	if cfg.CaseSensitive && cfg.PreserveCase {
		return nil, CompileError(loc, "case_sensitive and preserve_case are mutually exclusive")
	}

	input := applyCaseEquivalencies(r.Input, cfg.CaseEquivalencies, cfg.EscapeSpecial)
	before := applyCaseEquivalencies(r.ContextBefore, cfg.CaseEquivalencies, cfg.EscapeSpecial)
	after := applyCaseEquivalencies(r.ContextAfter, cfg.CaseEquivalencies, cfg.EscapeSpecial)

	input, err := abbr.expandPattern(input, loc)
	if err != nil {
		return nil, err
	}
	before, err = abbr.expandPattern(before, loc)
	if err != nil {
		return nil, err
	}
	after, err = abbr.expandPattern(after, loc)
	if err != nil {
		return nil, err
	}

	// rule_output is always literal regardless of escape_special, which
	// only governs how rule_input/contexts are read as patterns.
	output, err := abbr.expandLiteral(r.Output, loc)
	if err != nil {
		return nil, err
	}
	if !cfg.CaseSensitive {
		output = strings.ToLower(output)
	}

	pattern := input
	if before != "" {
		pattern = "(?<=" + before + ")" + pattern
	}
	if after != "" {
		pattern = pattern + "(?=" + after + ")"
	}

	opts := regexp2.RE2
	if !cfg.CaseSensitive {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, CompileError(loc, "invalid rule pattern: "+err.Error())
	}

	effLen := abbr.longestExpansion(r.Input)

	return &compiledRule{
		re:             re,
		replacement:    output,
		caseSensitive:  cfg.CaseSensitive,
		preserveCase:   cfg.PreserveCase,
		orderingLen:    effLen,
		sourceIndex:    sourceIndex,
		preventFeeding: r.PreventFeeding || cfg.PreventFeeding,
	}, nil
}

// findFrom searches runes for the leftmost match of the compiled
// pattern at or after rune position pos, keeping the runes before pos
// visible to the pattern's lookbehind context. Isolated in its own
// method so the one place that depends on regexp2's rune-indexed match
// API is easy to find.
func (cr *compiledRule) findFrom(runes []rune, pos int) (*regexp2.Match, error) {
	return cr.re.FindRunesMatchStartingAt(runes, pos)
}

func ruleLocation(cfg Config, sourceIndex int) string {
	return cfg.InLang + "->" + cfg.OutLang + "#" + itoa(sourceIndex)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// applyCase reapplies the case pattern observed in matched to out,
// implementing preserve_case: cluster by cluster, and any extra output
// clusters beyond the length of matched adopt the case of matched's
// last cluster. This is the documented default chosen for the
// otherwise-underspecified "multi-character output, mixed-case input"
// interaction (see DESIGN.md Open Question #2).
//
// matched and out are split into extended grapheme clusters rather
// than code points when graphemeAware is set, so a base letter's case
// carries correctly to output even when the matched input character is
// itself a base+combining-mark cluster (see textsegment.go).
func applyCase(matched, out string, graphemeAware bool) string {
	mr := segment(matched, graphemeAware)
	or := segment(out, graphemeAware)
	if len(mr) == 0 || len(or) == 0 {
		return out
	}
	result := make([]string, len(or))
	lastUpper := false
	for i, seg := range or {
		var upper bool
		if i < len(mr) {
			upper = isUpperSeg(mr[i])
			lastUpper = upper
		} else {
			upper = lastUpper
		}
		if upper {
			result[i] = strings.ToUpper(seg)
		} else {
			result[i] = strings.ToLower(seg)
		}
	}
	return joinSegments(result)
}

func isUpperSeg(s string) bool {
	return s != "" && strings.ToUpper(s) == s && strings.ToLower(s) != s
}

// applyCaseEquivalencies rewrites raw pattern source, character by
// character, replacing any rune that has a Mapping.Config.
// CaseEquivalencies entry with a bracket class over its equivalence set
// (so "[xy]" matches either form), and otherwise escaping or passing
// through the rune per escapeSpecial. {NAME} abbreviation references are
// copied through untouched so expandPattern can still resolve them
// afterwards.
func applyCaseEquivalencies(s string, equiv map[rune][]rune, escapeSpecial bool) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end >= 0 {
				b.WriteString(string(runes[i : end+1]))
				i = end
				continue
			}
		}
		if classRunes, ok := equiv[r]; ok && len(classRunes) > 0 {
			b.WriteByte('[')
			b.WriteString(regexEscape(string(r)))
			for _, cr := range classRunes {
				b.WriteString(regexEscape(string(cr)))
			}
			b.WriteByte(']')
			continue
		}
		if escapeSpecial {
			b.WriteString(regexEscape(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
