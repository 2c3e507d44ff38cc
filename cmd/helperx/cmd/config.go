package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/helperx/core/config"
	hxerror "github.com/msto63/helperx/core/error"
	hxlog "github.com/msto63/helperx/core/log"
)

func newConfigCmd() *cobra.Command {
	var (
		cfgFile   string
		envPrefix string
	)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Read configuration files",
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value at a dotted key such as db.host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOptions(cfgFile, config.Options{EnvPrefix: envPrefix})
			if err != nil {
				hxlog.GetDefault().ErrorWithErr("loading config failed", err, hxlog.Field("file", cfgFile))
				return err
			}
			config.SetDefault(cfg)

			value := config.Get(args[0])
			if value == nil {
				return hxerror.Newf("key %q not found", args[0]).
					WithCode(hxerror.CodeNotFound).
					WithOperation("cmd.config.get").
					WithDetail("file", cfgFile)
			}

			switch v := value.(type) {
			case string:
				fmt.Fprintln(cmd.OutOrStdout(), v)
			case map[string]any, []any:
				out, err := json.Marshal(v)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	getCmd.Flags().StringVar(&cfgFile, "config", "", "Config file (TOML, YAML or JSON)")
	getCmd.Flags().StringVar(&envPrefix, "env-prefix", "", "Environment variable prefix for overrides")
	_ = getCmd.MarkFlagRequired("config")

	configCmd.AddCommand(getCmd)
	return configCmd
}
