// Command g2p is the command-line front end for the conversion engine:
// convert text between notations, tokenize, inspect the mapping graph,
// and regenerate the on-disk mapping pack from a directory of mapping
// configuration files.
//
// File index:
//   - main.go                 - entry point, rootCmd, global flags, logger bootstrap
//   - cmd_convert.go          - `convert` subcommand
//   - cmd_tokenize.go         - `tokenize` subcommand
//   - cmd_update.go           - `update` subcommand (with --watch)
//   - cmd_generate_mapping.go - `generate-mapping` subcommand
//   - cmd_show_mappings.go    - `show-mappings` subcommand
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cv-labs/g2p"
	"github.com/cv-labs/g2p/assets"
	"github.com/cv-labs/g2p/logging"
)

var (
	verbose     bool
	mappingsDir string
	useDemo     bool

	logger = logging.Nop()
	net    = g2p.NewNetwork()
)

var rootCmd = &cobra.Command{
	Use:   "g2p",
	Short: "Rule-based grapheme-to-phoneme conversion engine",
	Long: `g2p converts text between notations (orthographies, phonemic
transcriptions, IPA, ASCII transliterations) using a network of
context-sensitive rewrite-rule mappings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l

		if useDemo {
			if err := assets.LoadInto(net); err != nil {
				return err
			}
		}
		if mappingsDir != "" {
			if err := loadMappingsDir(mappingsDir, net); err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&mappingsDir, "mappings-dir", "m", "", "directory of mapping.yaml configuration files to load before running")
	rootCmd.PersistentFlags().BoolVar(&useDemo, "demo", false, "load the bundled toy mapping family before running")

	rootCmd.AddCommand(
		convertCmd,
		tokenizeCmd,
		updateCmd,
		generateMappingCmd,
		showMappingsCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an EngineError's Kind to the process exit code per
// spec.md's table (0 success; 2 bad arguments; 3 no path found; 4
// compile error), falling back to 1 for anything not recognized (plain
// I/O failures cobra itself reports) and to dedicated codes above 4 for
// the Kinds the spec's table doesn't name, so they're never silently
// folded into one of the four documented codes.
func exitCodeFor(err error) int {
	var ee *g2p.EngineError
	if !asEngineError(err, &ee) {
		return 1
	}
	switch ee.Kind {
	case g2p.KindUsage:
		return 2
	case g2p.KindNoPath:
		return 3
	case g2p.KindCompile:
		return 4
	case g2p.KindConfig:
		return 5
	case g2p.KindLookup:
		return 6
	case g2p.KindIO:
		return 7
	default:
		return 1
	}
}

// exactArgs returns a cobra.PositionalArgs that rejects anything but
// exactly n arguments with a *g2p.EngineError (KindUsage) instead of
// cobra's own plain error, so exitCodeFor can route the failure to the
// spec's bad-arguments exit code rather than falling through to 1.
func exactArgs(n int, use string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return g2p.UsageError(fmt.Sprintf("expected usage: %s (got %d argument(s))", use, len(args)))
		}
		return nil
	}
}

func asEngineError(err error, target **g2p.EngineError) bool {
	for err != nil {
		if ee, ok := err.(*g2p.EngineError); ok {
			*target = ee
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
