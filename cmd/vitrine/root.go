package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "VITRINE"

// newViper resolves settings from bound flags, then VITRINE_* variables such
// as VITRINE_LOG_FILE.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newRootCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:           "vitrine",
		Short:         "Vitrine is the marketplace header and hero carousel, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("theme", "system", "Initial theme: light, dark or system")
	flags.String("language", "", "Initial language code (defaults to the first catalog language)")
	flags.String("log-file", "", "Append logs to this file (logs are discarded when empty)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("no-alt-screen", false, "Render inline instead of in the alternate screen")
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(flags)

	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
