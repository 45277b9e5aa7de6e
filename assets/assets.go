// Package assets bundles a small toy mapping family used by tests and
// by `g2p --demo` to give the engine something concrete to run against
// without a separately-distributed mapping pack: a dan -> dan-ipa ->
// eng-ipa -> eng-arpabet chain illustrating composition across three
// Mapping stages, plus a moh and an eng mapping whose differing word-
// character alphabets illustrate language-specific tokenization.
//
// None of these mappings are linguistically accurate; they exist to
// exercise the engine's wiring, not to transcribe real language data.
package assets

import (
	"embed"
	"io/fs"
	"sort"

	"github.com/cv-labs/g2p"
	"github.com/cv-labs/g2p/config"
)

//go:embed demo
var demoFS embed.FS

// Load builds a fresh Network from the bundled demo mapping family.
func Load() (*g2p.Network, error) {
	net := g2p.NewNetwork()
	if err := LoadInto(net); err != nil {
		return nil, err
	}
	return net, nil
}

// LoadInto installs the bundled demo mapping family onto net, in
// deterministic (sorted by directory name) order.
func LoadInto(net *g2p.Network) error {
	dirs, err := demoDirs()
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		mappingPath := dir + "/mapping.yaml"
		data, err := demoFS.ReadFile(mappingPath)
		if err != nil {
			return g2p.IOErrorf(mappingPath, err)
		}
		mf, err := config.DecodeMappingFile(data, mappingPath)
		if err != nil {
			return err
		}
		for _, entry := range mf.Mappings {
			m, err := config.BuildFS(readDemoFile, dir, entry)
			if err != nil {
				return err
			}
			net.AddMapping(m)
		}
	}
	return nil
}

func readDemoFile(path string) ([]byte, error) {
	return demoFS.ReadFile(path)
}

// demoDirs lists the top-level directories under demo/, sorted, each
// expected to hold one mapping.yaml.
func demoDirs() ([]string, error) {
	entries, err := fs.ReadDir(demoFS, "demo")
	if err != nil {
		return nil, g2p.IOErrorf("demo", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, "demo/"+e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
