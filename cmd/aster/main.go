package main

import (
	"os"

	"github.com/spf13/cobra"

	"aster/internal/interfaces/cli/migrate"
	"aster/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aster",
		Short: "Aster - a helpdesk and knowledge base service",
		Long:  `Aster is a helpdesk service managing customer inquiries, a category hierarchy, and a knowledge base, with built-in server and migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
