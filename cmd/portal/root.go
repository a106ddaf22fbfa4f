package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	v          *viper.Viper
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Client for the XRPL payment platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ./config.yaml or ./config/config.yaml)")
	flags.String("base-url", "", "platform base URL")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("log-pretty", false, "human-readable log output")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address")

	bindFlag(opts.v, "platform.base_url", root.PersistentFlags().Lookup("base-url"))
	bindFlag(opts.v, "log.level", root.PersistentFlags().Lookup("log-level"))
	bindFlag(opts.v, "log.pretty", root.PersistentFlags().Lookup("log-pretty"))
	bindFlag(opts.v, "metrics.addr", root.PersistentFlags().Lookup("metrics-addr"))

	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			opts.v.Set("ui.color", false)
		}
	}

	root.AddCommand(
		newPayCmd(opts),
		newLoginCmd(opts),
		newProbeCmd(opts),
		newHealthCmd(opts),
		newHistoryCmd(opts),
	)
	return root
}
