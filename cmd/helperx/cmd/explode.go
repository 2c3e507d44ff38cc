package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hxlog "github.com/msto63/helperx/core/log"
	"github.com/msto63/helperx/utils/stringx"
)

func newExplodeCmd() *cobra.Command {
	var (
		delimiter string
		limit     int
		escape    string
	)

	explodeCmd := &cobra.Command{
		Use:   "explode [text]",
		Short: "Split text on unescaped delimiters, one piece per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			pieces := stringx.ExplodeWithEscape(delimiter, input, limit, escape)
			hxlog.Debug("split input", hxlog.Fields{"delimiter": delimiter, "pieces": len(pieces)})
			for _, p := range pieces {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	explodeCmd.Flags().StringVarP(&delimiter, "delim", "d", ",", "Delimiter")
	explodeCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of pieces (0 = unlimited)")
	explodeCmd.Flags().StringVarP(&escape, "escape", "e", stringx.DefaultEscape, "Escape sequence protecting a delimiter")
	return explodeCmd
}
