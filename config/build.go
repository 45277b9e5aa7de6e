package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cv-labs/g2p"
)

// Build resolves entry's rules_path/abbreviations_path relative to
// baseDir on the regular filesystem, loads them, and compiles the whole
// thing into a *g2p.Mapping ready to install on a Network via
// AddMapping.
func Build(baseDir string, entry MappingEntry) (*g2p.Mapping, error) {
	return build(entry, func(relPath string) ([]byte, string, error) {
		full := filepath.Join(baseDir, relPath)
		b, err := os.ReadFile(full)
		if err != nil {
			return nil, full, g2p.IOErrorf(full, err)
		}
		return b, full, nil
	})
}

// BuildFS behaves like Build but resolves entry's paths by calling read
// with the path joined under baseDir, for callers backed by an fs.FS
// (e.g. an embed.FS of bundled demo mappings) rather than the OS
// filesystem.
func BuildFS(read func(path string) ([]byte, error), baseDir string, entry MappingEntry) (*g2p.Mapping, error) {
	return build(entry, func(relPath string) ([]byte, string, error) {
		full := baseDir + "/" + relPath
		b, err := read(full)
		if err != nil {
			return nil, full, g2p.IOErrorf(full, err)
		}
		return b, full, nil
	})
}

func build(entry MappingEntry, readRel func(relPath string) (data []byte, location string, err error)) (*g2p.Mapping, error) {
	cfg, err := toEngineConfig(entry)
	if err != nil {
		return nil, err
	}

	var abbr g2p.AbbreviationTable
	if entry.AbbreviationsPath != "" {
		data, loc, err := readRel(entry.AbbreviationsPath)
		if err != nil {
			return nil, err
		}
		abbrEntries, err := DecodeAbbreviationsFile(data, loc)
		if err != nil {
			return nil, err
		}
		m := make(map[string][]string, len(abbrEntries))
		for _, e := range abbrEntries {
			m[e.Name] = e.Expansions
		}
		abbr = g2p.NewAbbreviationTable(m)
	} else {
		abbr = g2p.NewAbbreviationTable(nil)
	}

	var rules []g2p.Rule
	switch cfg.Type {
	case g2p.TypeRule:
		if entry.RulesPath == "" {
			return nil, g2p.ConfigError(entry.InLang+"->"+entry.OutLang, "rule mappings require rules_path")
		}
		data, loc, err := readRel(entry.RulesPath)
		if err != nil {
			return nil, err
		}
		entries, err := DecodeRulesFile(data, loc)
		if err != nil {
			return nil, err
		}
		rules = make([]g2p.Rule, len(entries))
		for i, e := range entries {
			rules[i] = g2p.Rule{
				Input:          e.In,
				Output:         e.Out,
				ContextBefore:  e.ContextBefore,
				ContextAfter:   e.ContextAfter,
				PreventFeeding: e.PreventFeeding,
				Comment:        e.Comment,
			}
		}
	case g2p.TypeLexicon:
		if entry.RulesPath == "" {
			return nil, g2p.ConfigError(entry.InLang+"->"+entry.OutLang, "lexicon mappings require rules_path")
		}
		data, loc, err := readRel(entry.RulesPath)
		if err != nil {
			return nil, err
		}
		entries, err := DecodeRulesFile(data, loc)
		if err != nil {
			return nil, err
		}
		lex := make(map[string]string, len(entries))
		for _, e := range entries {
			lex[e.In] = e.Out
		}
		cfg.LexiconEntries = lex
	}

	return g2p.NewMapping(cfg, abbr, rules)
}

func toEngineConfig(entry MappingEntry) (g2p.Config, error) {
	cfg := g2p.Config{
		InLang:         entry.InLang,
		OutLang:        entry.OutLang,
		DisplayName:    entry.DisplayName,
		LanguageName:   entry.LanguageName,
		CaseSensitive:  entry.CaseSensitive,
		PreserveCase:   entry.PreserveCase,
		EscapeSpecial:  entry.EscapeSpecial,
		Reverse:        entry.Reverse,
		PreventFeeding: entry.PreventFeeding,
		OutDelimiter:   entry.OutDelimiter,
		Authors:        entry.Authors,
		AlignmentsPath: entry.AlignmentsPath,
	}

	switch entry.Type {
	case "", "rule":
		cfg.Type = g2p.TypeRule
	case "unidecode":
		cfg.Type = g2p.TypeUnidecode
	case "lexicon":
		cfg.Type = g2p.TypeLexicon
	default:
		return cfg, g2p.ConfigError(entry.InLang+"->"+entry.OutLang, "unknown mapping type: "+entry.Type)
	}

	switch entry.RuleOrdering {
	case "", "as-written":
		cfg.RuleOrdering = g2p.OrderAsWritten
	case "apply-longest-first":
		cfg.RuleOrdering = g2p.OrderLongestFirst
	default:
		return cfg, g2p.ConfigError(entry.InLang+"->"+entry.OutLang, "unknown rule_ordering: "+entry.RuleOrdering)
	}

	switch strings.ToLower(entry.NormForm) {
	case "", "none":
		cfg.NormForm = g2p.NormNone
	case "nfc":
		cfg.NormForm = g2p.NormNFC
	case "nfd":
		cfg.NormForm = g2p.NormNFD
	case "nfkc":
		cfg.NormForm = g2p.NormNFKC
	case "nfkd":
		cfg.NormForm = g2p.NormNFKD
	default:
		return cfg, g2p.ConfigError(entry.InLang+"->"+entry.OutLang, "unknown norm_form: "+entry.NormForm)
	}

	return cfg, nil
}
