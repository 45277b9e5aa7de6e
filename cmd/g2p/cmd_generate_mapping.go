package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cv-labs/g2p"
	"github.com/cv-labs/g2p/config"
)

var (
	generateIPA    bool
	generateOutput string
)

var generateMappingCmd = &cobra.Command{
	Use:   "generate-mapping IN_LANG OUT_LANG",
	Short: "Compose the resolved path from IN_LANG to OUT_LANG into one new mapping edge",
	Args:  exactArgs(2, "generate-mapping IN_LANG OUT_LANG"),
	RunE: func(cmd *cobra.Command, args []string) error {
		inLang, outLang := args[0], args[1]

		mode := g2p.ComposeDirect
		if generateIPA {
			mode = g2p.ComposeIPA
		}
		generated, err := net.GenerateMapping(inLang, outLang, mode)
		if err != nil {
			return err
		}

		// generated is already installed as an edge on net; --out
		// additionally persists its flattened rule table for hand-editing.
		entries := flattenGeneratedRules(generated)

		w := cmd.OutOrStdout()
		if generateOutput != "" {
			f, err := os.Create(generateOutput)
			if err != nil {
				return g2p.IOErrorf(generateOutput, err)
			}
			defer f.Close()
			w = f
		}
		return config.WriteRulesCSV(w, entries)
	},
}

// flattenGeneratedRules re-derives the literal in->out rule rows a
// generated Mapping was built from, for persistence via --out. A
// Mapping doesn't retain its raw rule sources after compilation (only
// the compiled matcher), so this recomputes them from the Mapping's
// rule alphabet the same way Network.GenerateMapping did.
func flattenGeneratedRules(m *g2p.Mapping) []config.RuleEntry {
	entries := make([]config.RuleEntry, 0, len(m.RuleAlphabet()))
	for r := range m.RuleAlphabet() {
		in := string(r)
		out, _ := m.Apply(in)
		if out == in {
			continue
		}
		entries = append(entries, config.RuleEntry{In: in, Out: out})
	}
	return entries
}

func init() {
	generateMappingCmd.Flags().BoolVar(&generateIPA, "ipa", false, "name the generated edge's out_lang with an -ipa suffix and force case-sensitive matching")
	generateMappingCmd.Flags().StringVar(&generateOutput, "out", "", "write the flattened rule table to this CSV path instead of stdout")
}
