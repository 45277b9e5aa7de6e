package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:   "convert IN_LANG OUT_LANG TEXT",
	Short: "Convert TEXT from IN_LANG to OUT_LANG",
	Args:  exactArgs(3, "convert IN_LANG OUT_LANG TEXT"),
	RunE: func(cmd *cobra.Command, args []string) error {
		inLang, outLang, text := args[0], args[1], args[2]
		logger.Debug("convert requested",
			zap.String("in_lang", inLang), zap.String("out_lang", outLang), zap.String("text", text))

		result, err := net.Convert(context.Background(), text, inLang, outLang)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Output)
		return nil
	},
}
