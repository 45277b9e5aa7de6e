package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize LANG TEXT",
	Short: "Split TEXT into word/non-word tokens using LANG's rule alphabet",
	Args:  exactArgs(2, "tokenize LANG TEXT"),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, text := args[0], args[1]
		tokens := net.TokenizerFor(lang).Tokenize(text)
		for _, tok := range tokens {
			kind := "non-word"
			if tok.IsWord {
				kind = "word"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", kind, tok.Text)
		}
		return nil
	},
}
