package config

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cv-labs/g2p"
	"gopkg.in/yaml.v3"
)

// LoadMappingFile reads and decodes a mapping configuration file at
// path. Unknown fields are rejected (yaml.Decoder.KnownFields(true)),
// matching the engine's "fail loudly on a malformed or stale config"
// policy rather than silently ignoring typos.
func LoadMappingFile(path string) (*MappingFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, g2p.IOErrorf(path, err)
	}
	return DecodeMappingFile(b, path)
}

// DecodeMappingFile decodes the bytes of a mapping configuration
// document. location is used only for error messages (a file path, or
// an embedded-asset path when the bytes came from an embed.FS).
func DecodeMappingFile(data []byte, location string) (*MappingFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var mf MappingFile
	if err := dec.Decode(&mf); err != nil {
		return nil, g2p.ConfigError(location, fmt.Sprintf("decoding mapping file: %v", err))
	}
	for i := range mf.Mappings {
		if err := checkLegacyAsIs(location, mf.Mappings[i]); err != nil {
			return nil, err
		}
	}
	return &mf, nil
}

// checkLegacyAsIs rejects the pre-enum `as_is: bool` rule-ordering
// schema with a migration hint, rather than either silently translating
// it or letting it fall through to a generic unknown-field error. See
// DESIGN.md's Open Question #1.
func checkLegacyAsIs(location string, m MappingEntry) error {
	if m.AsIs == nil {
		return nil
	}
	want := "apply-longest-first"
	if *m.AsIs {
		want = "as-written"
	}
	return g2p.ConfigError(location, fmt.Sprintf(
		"mapping %s->%s uses the removed `as_is` field; replace it with `rule_ordering: %s`",
		m.InLang, m.OutLang, want))
}

// LoadRulesFile reads a rules file, dispatching on its extension:
// ".csv" is read as CSV with a header row, anything else is decoded as
// the structured RulesFile YAML document.
func LoadRulesFile(path string) ([]RuleEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, g2p.IOErrorf(path, err)
	}
	return DecodeRulesFile(b, path)
}

// DecodeRulesFile decodes the bytes of a rules file, dispatching on
// location's extension the same way LoadRulesFile does.
func DecodeRulesFile(data []byte, location string) ([]RuleEntry, error) {
	if strings.HasSuffix(location, ".csv") {
		return decodeRulesCSV(data, location)
	}
	return decodeRulesYAML(data, location)
}

func decodeRulesYAML(data []byte, location string) ([]RuleEntry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rf RulesFile
	if err := dec.Decode(&rf); err != nil {
		return nil, g2p.ConfigError(location, fmt.Sprintf("decoding rules file: %v", err))
	}
	return rf.Rules, nil
}

func decodeRulesCSV(data []byte, location string) ([]RuleEntry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, g2p.ConfigError(location, fmt.Sprintf("parsing CSV: %v", err))
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	entries := make([]RuleEntry, 0, len(records)-1)
	for _, row := range records[1:] {
		entries = append(entries, RuleEntry{
			In:             get(row, "in"),
			Out:            get(row, "out"),
			ContextBefore:  get(row, "context_before"),
			ContextAfter:   get(row, "context_after"),
			PreventFeeding: get(row, "prevent_feeding") == "true" || get(row, "prevent_feeding") == "1",
			Comment:        get(row, "comment"),
		})
	}
	return entries, nil
}

// LoadAbbreviationsFile reads an abbreviations file: CSV with a `name`
// column and one or more `expansion` columns (expansion, expansion_2,
// expansion_3, ...), the convention the reference mapping packs use for
// giving a name several alternatives in priority order.
func LoadAbbreviationsFile(path string) ([]AbbreviationEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, g2p.IOErrorf(path, err)
	}
	return DecodeAbbreviationsFile(b, path)
}

// DecodeAbbreviationsFile decodes the bytes of an abbreviations CSV.
func DecodeAbbreviationsFile(data []byte, location string) ([]AbbreviationEntry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, g2p.ConfigError(location, fmt.Sprintf("parsing CSV: %v", err))
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	nameCol := -1
	var expansionCols []int
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "name" {
			nameCol = i
			continue
		}
		if strings.HasPrefix(name, "expansion") {
			expansionCols = append(expansionCols, i)
		}
	}
	if nameCol < 0 {
		return nil, g2p.ConfigError(location, "abbreviations file missing a `name` column")
	}

	entries := make([]AbbreviationEntry, 0, len(records)-1)
	for _, row := range records[1:] {
		if nameCol >= len(row) || row[nameCol] == "" {
			continue
		}
		var exps []string
		for _, c := range expansionCols {
			if c < len(row) && row[c] != "" {
				exps = append(exps, row[c])
			}
		}
		if len(exps) == 0 {
			continue
		}
		entries = append(entries, AbbreviationEntry{Name: row[nameCol], Expansions: exps})
	}
	return entries, nil
}

// WriteRulesCSV is used by cmd/g2p's generate-mapping command to persist
// a generated Mapping's rules back out in the same CSV shape LoadRulesFile
// reads, so a generated edge can be hand-edited and reloaded like any
// authored one.
func WriteRulesCSV(w io.Writer, entries []RuleEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"in", "out", "context_before", "context_after", "prevent_feeding", "comment"}); err != nil {
		return err
	}
	for _, e := range entries {
		pf := ""
		if e.PreventFeeding {
			pf = "true"
		}
		if err := cw.Write([]string{e.In, e.Out, e.ContextBefore, e.ContextAfter, pf, e.Comment}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
