package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cv-labs/g2p"
	"github.com/cv-labs/g2p/assets"
	"github.com/cv-labs/g2p/internal/index"
)

var (
	watchFlag   bool
	indexOutput string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Reload mapping configuration files from --mappings-dir",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mappingsDir == "" {
			return g2p.ConfigError("update", "--mappings-dir is required")
		}
		if err := reloadMappings(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "mappings reloaded")

		if !watchFlag {
			return nil
		}
		return watchMappings(cmd)
	},
}

func init() {
	updateCmd.Flags().BoolVar(&watchFlag, "watch", false, "keep running and reload whenever a mapping file under --mappings-dir changes")
	updateCmd.Flags().StringVar(&indexOutput, "index-out", "", "write the reloaded graph's compiled index to this path after every reload")
}

// reloadMappings rebuilds the package-level net from --demo (if set)
// and --mappings-dir from scratch, so a mapping whose in_lang/out_lang
// changed or whose file was deleted doesn't linger as a stale edge,
// then persists the compiled index to --index-out if set.
func reloadMappings() error {
	fresh := g2p.NewNetwork()
	if useDemo {
		if err := assets.LoadInto(fresh); err != nil {
			return err
		}
	}
	if err := loadMappingsDir(mappingsDir, fresh); err != nil {
		return err
	}
	net = fresh

	if indexOutput != "" {
		if err := index.Write(indexOutput, index.BuildFromNetwork(net)); err != nil {
			return err
		}
	}
	return nil
}

// watchMappings blocks, reloading on every write, create, remove or
// rename event under mappingsDir (no debouncing: each event triggers
// its own reload), following the teacher corpus's fsnotify.NewWatcher/
// AddRecursive idiom (theRebelliousNerd-codenerd's world scanner uses
// the same reload-on-event shape for its file watch).
func watchMappings(cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return g2p.IOErrorf(mappingsDir, err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, mappingsDir); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("mapping file changed, reloading", zap.String("path", event.Name))
			if err := reloadMappings(); err != nil {
				logger.Error("reload failed", zap.Error(err))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), "mappings reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}
