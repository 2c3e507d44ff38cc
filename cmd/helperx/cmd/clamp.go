package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	hxerror "github.com/msto63/helperx/core/error"
	"github.com/msto63/helperx/utils/mathx"
)

func newClampCmd() *cobra.Command {
	var (
		lower, upper float64
		exclusive bool
	)

	clampCmd := &cobra.Command{
		Use:   "clamp [number]",
		Short: "Force a number into [min, max] and report whether it was inside",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
			if err != nil {
				return hxerror.Wrap(err, "invalid number").
					WithCode(hxerror.CodeInvalidInput).
					WithOperation("cmd.clamp")
			}
			inside := mathx.IsBetween(v, lower, upper, exclusive)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %t\n", strconv.FormatFloat(mathx.ForceRange(v, lower, upper), 'g', -1, 64), inside)
			return nil
		},
	}

	clampCmd.Flags().Float64Var(&lower, "min", 0, "Lower bound")
	clampCmd.Flags().Float64Var(&upper, "max", 1, "Upper bound")
	clampCmd.Flags().BoolVar(&exclusive, "exclusive", false, "Bounds are excluded from the range check")
	return clampCmd
}
