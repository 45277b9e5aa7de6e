package main

import (
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/cv-labs/g2p"
)

// addRecursive registers watcher on root and every subdirectory beneath
// it: fsnotify watches are non-recursive by nature, so a mapping pack
// laid out as one directory per language needs one Add call per
// directory.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return g2p.IOErrorf(root, err)
	}
	return nil
}
