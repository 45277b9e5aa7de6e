// Package config decodes the external configuration file formats this
// engine reads: mapping configuration files (YAML), rules files (CSV or
// a structured YAML list), and abbreviations files (CSV). It is the
// boundary where ConfigError/CompileError/IOError surface, never on the
// conversion hot path, per the engine's error-propagation policy.
package config

// MappingFile is the top-level document of a mapping configuration
// file: one per language folder, describing one or more Mappings.
type MappingFile struct {
	Mappings []MappingEntry `yaml:"mappings"`
}

// MappingEntry is one entry of a MappingFile's mappings list.
type MappingEntry struct {
	InLang       string `yaml:"in_lang"`
	OutLang      string `yaml:"out_lang"`
	DisplayName  string `yaml:"display_name"`
	LanguageName string `yaml:"language_name"`

	RulesPath         string `yaml:"rules_path"`
	AbbreviationsPath string `yaml:"abbreviations_path"`

	Type         string `yaml:"type"`
	RuleOrdering string `yaml:"rule_ordering"`

	CaseSensitive  bool `yaml:"case_sensitive"`
	PreserveCase   bool `yaml:"preserve_case"`
	EscapeSpecial  bool `yaml:"escape_special"`
	Reverse        bool `yaml:"reverse"`
	PreventFeeding bool `yaml:"prevent_feeding"`

	NormForm     string `yaml:"norm_form"`
	OutDelimiter string `yaml:"out_delimiter"`

	Authors        []string `yaml:"authors"`
	AlignmentsPath string   `yaml:"alignments_path"`

	// AsIs, when present, is the pre-enum rule-ordering schema
	// (`as_is: bool`) some source configs still carry. It is deliberately
	// kept as a recognized field (rather than left to trip the decoder's
	// unknown-field check) so DecodeMappingFile can reject it with a targeted
	// migration diagnostic instead of a generic "unknown field" error —
	// see DESIGN.md Open Question #1.
	AsIs *bool `yaml:"as_is"`
}

// RuleEntry is one rule, decoded from either a CSV row or a structured
// YAML list entry of a rules file.
type RuleEntry struct {
	In             string `yaml:"in" csv:"in"`
	Out            string `yaml:"out" csv:"out"`
	ContextBefore  string `yaml:"context_before" csv:"context_before"`
	ContextAfter   string `yaml:"context_after" csv:"context_after"`
	PreventFeeding bool   `yaml:"prevent_feeding" csv:"prevent_feeding"`
	Comment        string `yaml:"comment" csv:"comment"`
}

// RulesFile is the structured-YAML-list form of a rules file.
type RulesFile struct {
	Rules []RuleEntry `yaml:"rules"`
}

// AbbreviationEntry is one row of an abbreviations file: a name and its
// ordered list of expansions.
type AbbreviationEntry struct {
	Name       string
	Expansions []string
}
