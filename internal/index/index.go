// Package index reads and writes the engine's compiled index: a single
// gzip-compressed YAML document summarizing every Mapping known to a
// Network, used by the CLI's `show-mappings` command and written by
// `update --index-out` after every reload of the in-memory Network.
package index

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cv-labs/g2p"
)

// SchemaVersion is the current on-disk schema identifier. A mismatch on
// read is a ConfigError, not a silent best-effort parse: the index
// format is allowed to change between engine releases.
const SchemaVersion = "g2p-index-v1"

// MappingSummary is one Mapping's entry in a CompiledIndex.
type MappingSummary struct {
	InLang      string `yaml:"in_lang"`
	OutLang     string `yaml:"out_lang"`
	DisplayName string `yaml:"display_name,omitempty"`
	Type        string `yaml:"type"`
	RuleCount   int    `yaml:"rule_count"`
}

// Edge is one adjacency entry of a CompiledIndex: a direct edge between
// two notations, redundant with Mappings but kept separate so the
// adjacency list can be consulted without re-deriving it from
// MappingSummary.Type-bearing entries.
type Edge struct {
	InLang  string `yaml:"in_lang"`
	OutLang string `yaml:"out_lang"`
}

// CompiledIndex is the full document persisted by Write and read back by
// Read.
type CompiledIndex struct {
	SchemaVersion string           `yaml:"schema_version"`
	Mappings      []MappingSummary `yaml:"mappings"`
	Adjacency     []Edge           `yaml:"adjacency"`
}

// Write gzip-compresses idx as YAML and writes it to path.
func Write(path string, idx CompiledIndex) error {
	idx.SchemaVersion = SchemaVersion

	f, err := os.Create(path)
	if err != nil {
		return g2p.IOErrorf(path, err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	enc := yaml.NewEncoder(gw)
	if err := enc.Encode(idx); err != nil {
		gw.Close()
		return g2p.IOErrorf(path, fmt.Errorf("encoding index: %w", err))
	}
	if err := enc.Close(); err != nil {
		gw.Close()
		return g2p.IOErrorf(path, fmt.Errorf("closing index encoder: %w", err))
	}
	return gw.Close()
}

// Read decompresses and decodes the CompiledIndex at path, rejecting
// anything whose schema_version doesn't match SchemaVersion.
func Read(path string) (CompiledIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return CompiledIndex{}, g2p.IOErrorf(path, err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return CompiledIndex{}, g2p.IOErrorf(path, fmt.Errorf("not gzip-compressed: %w", err))
	}
	defer gr.Close()

	var idx CompiledIndex
	dec := yaml.NewDecoder(gr)
	dec.KnownFields(true)
	if err := dec.Decode(&idx); err != nil && err != io.EOF {
		return CompiledIndex{}, g2p.IOErrorf(path, fmt.Errorf("decoding index: %w", err))
	}

	if idx.SchemaVersion != SchemaVersion {
		return CompiledIndex{}, g2p.ConfigError(path, fmt.Sprintf(
			"index has schema_version %q, this build expects %q (rebuild with `g2p update`)",
			idx.SchemaVersion, SchemaVersion))
	}
	return idx, nil
}
