package main

import (
	"os"

	"github.com/spf13/cobra"

	"yordam/internal/interfaces/cli/migrate"
	"yordam/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "yordam",
		Short: "Yordam - municipal IT helpdesk",
		Long:  `Yordam is the municipal IT helpdesk service with built-in server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
