package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	var yes bool

	root := &cobra.Command{
		Use:   "bootwatch",
		Short: "List and remove programs that start at login",
		Long: `bootwatch enumerates launchd agents and login items on macOS, and Run
key values and Startup folder entries on Windows. Run it without a
subcommand to pick an entry interactively and delete it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), cmd.Flags().Changed("config"))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPick(cmd.Context(), yes)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFlag, "config", "", "path to config file (default: search standard locations)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFile, "log-file", "", "append JSON logs to this file")
	root.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")

	root.AddCommand(
		newPickCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}
