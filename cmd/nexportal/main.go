package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nexorbs/nexportal/internal/interfaces/cli/migrate"
	"github.com/nexorbs/nexportal/internal/interfaces/cli/seed"
	"github.com/nexorbs/nexportal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nexportal",
		Short: "Nexportal - service business portal backend",
		Long:  `Nexportal is the portal backend for clients, developers and admins: projects, support tickets and user management over a JSON API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
