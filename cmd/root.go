package cmd

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sabdam",
		Short: "Malayalam pronunciation practice",
		Long: "Sabdam is a terminal app for practising Malayalam words that are easy to mix up.\n" +
			"Run it without arguments to open the practice menu.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, tuiOptions{})
		},
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SABDAM_DB)")
	root.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/sabdam/config.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newPracticeCmd(),
		newStatsCmd(),
		newHistoryCmd(),
		newWordsCmd(),
		newDifficultCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newTipCmd(),
		newVersionCmd(),
		newUpdateCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
