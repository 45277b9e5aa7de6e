package main

import (
	"os"
	"path/filepath"

	"github.com/cv-labs/g2p"
	"github.com/cv-labs/g2p/config"
)

// loadMappingsDir walks dir for mapping.yaml files (one per language
// folder, the convention used by the reference mapping packs) and
// installs every compiled Mapping onto net.
func loadMappingsDir(dir string, net *g2p.Network) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(path) != "mapping.yaml" {
			return nil
		}
		mf, err := config.LoadMappingFile(path)
		if err != nil {
			return err
		}
		base := filepath.Dir(path)
		for _, entry := range mf.Mappings {
			m, err := config.Build(base, entry)
			if err != nil {
				return err
			}
			net.AddMapping(m)
		}
		return nil
	})
}
