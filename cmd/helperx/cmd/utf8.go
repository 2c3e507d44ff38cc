package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperx/utils/utf8x"
)

func newUTF8Cmd() *cobra.Command {
	var multiline bool

	utf8Cmd := &cobra.Command{
		Use:   "utf8",
		Short: "Validate and normalise UTF-8 text",
	}

	transform := func(use, short string, fn func(string) string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " [text]",
			Short: short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				input, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn(input))
				return nil
			},
		}
	}

	checkCmd := transform("check", "Print whether the input is valid UTF-8", func(s string) string {
		return fmt.Sprint(utf8x.Check(s))
	})
	trimCmd := transform("trim", "Strip Unicode whitespace and controls at both ends", utf8x.Trim)
	normalizeCmd := transform("normalize", "Collapse runs of Unicode whitespace and controls to one space", func(s string) string {
		return utf8x.NormalizeSpaces(s, multiline)
	})
	normalizeCmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "Keep line feeds")
	mbencodeCmd := transform("mbencode", "Encode characters outside the BMP as &#x...; references", utf8x.MBEncode)

	utf8Cmd.AddCommand(checkCmd, trimCmd, normalizeCmd, mbencodeCmd)
	return utf8Cmd
}
