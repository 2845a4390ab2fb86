package main

import (
	"os"

	"github.com/spf13/cobra"

	"airadmin/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "airadmin",
		Short: "Admin panel for the airline simulation",
		Long:  `airadmin manages the bot airlines of the airline simulation: creation, bankruptcy resets, and turn scheduling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
