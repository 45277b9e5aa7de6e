package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cv-labs/g2p/internal/index"
)

var showMappingsCmd = &cobra.Command{
	Use:   "show-mappings",
	Short: "List every mapping edge currently loaded",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := index.BuildFromNetwork(net)
		for _, m := range idx.Mappings {
			name := m.DisplayName
			if name == "" {
				name = fmt.Sprintf("%s -> %s", m.InLang, m.OutLang)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-8s %s (%d rules)\n", m.InLang+"->"+m.OutLang, m.Type, name, m.RuleCount)
		}
		return nil
	},
}
