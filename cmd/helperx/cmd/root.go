package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	hxlog "github.com/msto63/helperx/core/log"
)

var verbose bool

// NewRootCommand builds the helperx command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "helperx",
		Short: "helperx - string, encoding and colour helpers",
		Long: `helperx exposes the helperx utility packages on the command line.

Every command reads its input from the first argument, or from stdin when
no argument is given.

Commands:
  escape   - escape text for HTML, CSS, JavaScript or PHP string literals
  base64   - URL-safe base64 encoding
  color    - convert between hex colours and RGB triples
  utf8     - validate, trim and normalise UTF-8 text
  explode  - split on a delimiter with escape support
  tobool   - interpret text as a boolean
  clamp    - force a number into a range
  config   - read values from a configuration file`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hxlog.LevelInfo
			if verbose {
				level = hxlog.LevelDebug
			}
			hxlog.SetDefault(hxlog.NewWithConfig(hxlog.Config{
				Level:  level,
				Format: hxlog.FormatText,
				Output: cmd.ErrOrStderr(),
				Name:   "helperx",
			}))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")

	rootCmd.AddCommand(
		newEscapeCmd(),
		newBase64Cmd(),
		newColorCmd(),
		newUTF8Cmd(),
		newExplodeCmd(),
		newToBoolCmd(),
		newClampCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// readInput returns args[0], or stdin without its final line break
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
