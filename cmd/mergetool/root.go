package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	app := newAppContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "mergetool",
		Short:         "Merge duplicate podcasts and episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newPodcastsCommand(app))
	rootCmd.AddCommand(newEpisodesCommand(app))
	rootCmd.AddCommand(newEnqueueCommand(app))
	rootCmd.AddCommand(newWorkerCommand(app))
	rootCmd.AddCommand(newResolveCommand(app))

	return rootCmd
}
