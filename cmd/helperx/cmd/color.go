package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	hxerror "github.com/msto63/helperx/core/error"
	"github.com/msto63/helperx/utils/colorx"
)

func newColorCmd() *cobra.Command {
	var noHash bool

	colorCmd := &cobra.Command{
		Use:   "color",
		Short: "Convert between hex colours and RGB triples",
	}

	hex2rgbCmd := &cobra.Command{
		Use:   "hex2rgb [hex]",
		Short: "Print the RGB triple of a #rgb or #rrggbb colour",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rgb := colorx.Hex2RGB(strings.TrimSpace(input))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", rgb[0], rgb[1], rgb[2])
			return nil
		},
	}

	rgb2hexCmd := &cobra.Command{
		Use:   "rgb2hex <r> <g> <b>",
		Short: "Print the hex notation of an RGB triple (\"null\" for a missing channel)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rgb colorx.RGB
			for i, arg := range args {
				if strings.EqualFold(arg, "null") {
					continue
				}
				v, err := strconv.Atoi(arg)
				if err != nil {
					return hxerror.Wrap(err, "invalid colour channel").
						WithCode(hxerror.CodeInvalidInput).
						WithOperation("cmd.rgb2hex").
						WithDetail("channel", i)
				}
				rgb[i] = colorx.Some(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), colorx.RGB2Hex(rgb, !noHash))
			return nil
		},
	}
	rgb2hexCmd.Flags().BoolVar(&noHash, "no-hash", false, "Omit the leading #")

	colorCmd.AddCommand(hex2rgbCmd, rgb2hexCmd)
	return colorCmd
}
