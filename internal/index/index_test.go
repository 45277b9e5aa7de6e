package index

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/cv-labs/g2p"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gz")
	idx := CompiledIndex{
		Mappings:  []MappingSummary{{InLang: "dan", OutLang: "dan-ipa", Type: "rule", RuleCount: 3}},
		Adjacency: []Edge{{InLang: "dan", OutLang: "dan-ipa"}},
	}
	require.NoError(t, Write(path, idx))

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, SchemaVersion, got.SchemaVersion)
	require.Len(t, got.Mappings, 1)
	require.Equal(t, "dan", got.Mappings[0].InLang)
}

func TestReadSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.gz")
	// Write always stamps the current SchemaVersion, so forge a raw,
	// differently-versioned document to exercise the mismatch path.
	f, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	require.NoError(t, yaml.NewEncoder(gw).Encode(CompiledIndex{SchemaVersion: "g2p-index-v0"}))
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	_, err = Read(path)
	require.Error(t, err)
}

func TestBuildFromNetwork(t *testing.T) {
	n := g2p.NewNetwork()
	cfg := g2p.Config{InLang: "a", OutLang: "b", Type: g2p.TypeRule}
	m, err := g2p.NewMapping(cfg, g2p.NewAbbreviationTable(nil), []g2p.Rule{{Input: "x", Output: "y"}})
	require.NoError(t, err)
	n.AddMapping(m)

	idx := BuildFromNetwork(n)
	require.Len(t, idx.Mappings, 1)
	require.Equal(t, "a", idx.Mappings[0].InLang)
	require.Equal(t, "b", idx.Mappings[0].OutLang)
}
