package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arenacode/arenactl/internal/config"
)

// main is the entry point of the Arena CLI.
//
// The CLI is a thin layer over the client packages: internal/api for
// requests, internal/tracker for submission tracking and
// internal/standings for live leaderboards. All state it keeps
// between invocations is the session file.
func main() {
	rootCmd := cobra.Command{
		Use:           "arenactl",
		Short:         "Command line client for the Arena contest platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	registerAuthCommands(&rootCmd)
	registerContestCommands(&rootCmd)
	registerProblemCommands(&rootCmd)
	registerSubmissionCommands(&rootCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Prints information about version",
		Run: func(cmd *cobra.Command, _ []string) {
			println("arenactl version:", config.Version)
		},
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
