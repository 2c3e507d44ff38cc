package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperx/utils/encodingx"
)

func newBase64Cmd() *cobra.Command {
	base64Cmd := &cobra.Command{
		Use:   "base64",
		Short: "URL-safe base64 without padding",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encodingx.Base64EncodeURLSafe([]byte(input)))
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode text, skipping characters outside the alphabet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(encodingx.Base64DecodeURLSafe(input))
			return err
		},
	}

	hexCmd := &cobra.Command{
		Use:   "fromhex [hex]",
		Short: "Decode hex digits and print the result as base64",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			data := encodingx.Hex2Bin(input)
			if data == nil {
				return fmt.Errorf("invalid hex input %q", input)
			}
			fmt.Fprintln(cmd.OutOrStdout(), encodingx.Base64EncodeURLSafe(data))
			return nil
		},
	}

	base64Cmd.AddCommand(encodeCmd, decodeCmd, hexCmd)
	return base64Cmd
}
