// Package commands wires the CLI surface: `watch` runs the interactive
// dashboard (also the default when no subcommand is given) and `check`
// runs a single poll cycle for scripts.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "ntpmon",
		Short:         "Monitor NTP servers from your terminal",
		Long:          "ntpmon polls a set of NTP servers on a fixed interval and shows round-trip time,\nclock offset and root delay/dispersion per server, with running min/max bounds.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation behaves like `ntpmon watch`.
			cfgPath, _ := cmd.Flags().GetString("config")
			return runWatch(cfgPath, pollOverrides{})
		},
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (optional; compiled-in defaults apply)")

	root.AddCommand(watchCmd())
	root.AddCommand(checkCmd())
	return root
}
