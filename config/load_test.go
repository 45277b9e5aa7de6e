package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMappingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mapping.yaml", `
mappings:
  - in_lang: dan
    out_lang: dan-ipa
    rules_path: dan_ipa.csv
    rule_ordering: apply-longest-first
`)
	mf, err := LoadMappingFile(path)
	require.NoError(t, err)
	require.Len(t, mf.Mappings, 1)
	require.Equal(t, "dan", mf.Mappings[0].InLang)
	require.Equal(t, "apply-longest-first", mf.Mappings[0].RuleOrdering)
}

func TestLoadMappingFileUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mapping.yaml", `
mappings:
  - in_lang: dan
    out_lang: dan-ipa
    not_a_real_field: true
`)
	_, err := LoadMappingFile(path)
	require.Error(t, err)
}

func TestLoadMappingFileLegacyAsIs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mapping.yaml", `
mappings:
  - in_lang: dan
    out_lang: dan-ipa
    as_is: true
`)
	_, err := LoadMappingFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "as-written")
}

func TestLoadRulesFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rules.csv", "in,out,context_before,context_after,prevent_feeding,comment\na,b,,,,\nc,d,x,y,true,note\n")
	entries, err := LoadRulesFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "a", entries[0].In)
	require.Equal(t, "b", entries[0].Out)
	require.True(t, entries[1].PreventFeeding)
	require.Equal(t, "note", entries[1].Comment)
}

func TestLoadRulesFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rules.yaml", `
rules:
  - in: a
    out: b
  - in: c
    out: d
    context_before: x
`)
	entries, err := LoadRulesFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "x", entries[1].ContextBefore)
}

func TestLoadAbbreviationsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "abbr.csv", "name,expansion,expansion_2\nVOWEL,a,e\nCONS,b,\n")
	entries, err := LoadAbbreviationsFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "VOWEL", entries[0].Name)
	require.Equal(t, []string{"a", "e"}, entries[0].Expansions)
	require.Equal(t, []string{"b"}, entries[1].Expansions)
}

func TestLoadMappingFileMissing(t *testing.T) {
	_, err := LoadMappingFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
