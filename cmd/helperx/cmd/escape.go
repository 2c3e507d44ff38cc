package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	hxerror "github.com/msto63/helperx/core/error"
	hxlog "github.com/msto63/helperx/core/log"
	"github.com/msto63/helperx/utils/escapex"
)

func newEscapeCmd() *cobra.Command {
	var (
		context  string
		noDouble bool
	)

	escapeCmd := &cobra.Command{
		Use:   "escape [text]",
		Short: "Escape text for an output context",
		Long: `Escape text for one of the supported contexts:

  html - HTML entities (& < > " ')
  css  - strip everything outside [A-Za-z0-9_.#/-]
  js   - JavaScript string literal body
  sq   - single-quoted PHP string
  dq   - double-quoted PHP string`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			hxlog.Debug("escaping input", hxlog.Fields{"context": context, "bytes": len(input)})

			var out string
			switch context {
			case "html":
				out = escapex.Escape(input, !noDouble)
			case "css":
				out = escapex.EscapeCSS(input)
			case "js":
				out = escapex.EscapeJS(input)
			case "sq":
				out = escapex.EscapeSQStr(input)
			case "dq":
				out = escapex.EscapeDQStr(input)
			default:
				return hxerror.Newf("unknown escape context %q", context).
					WithCode(hxerror.CodeInvalidInput).
					WithOperation("cmd.escape")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	escapeCmd.Flags().StringVarP(&context, "context", "c", "html", "Output context: html, css, js, sq, dq")
	escapeCmd.Flags().BoolVar(&noDouble, "no-double", false, "Keep existing HTML entities (html context only)")
	return escapeCmd
}
