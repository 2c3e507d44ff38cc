package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperx/utils/stringx"
)

func newToBoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tobool [text]",
		Short: "Interpret text as a boolean (yes/no, on/off, oui/non, ...)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.ToBool(input))
			return nil
		},
	}
}
