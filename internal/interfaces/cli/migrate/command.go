// Package migrate implements the `nexportal migrate` command group.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexorbs/nexportal/internal/infrastructure/config"
	"github.com/nexorbs/nexportal/internal/infrastructure/database"
	"github.com/nexorbs/nexportal/internal/infrastructure/migration"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}
			defer database.Close()

			return migration.Run(database.Get(), logger.NewLogger())
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}
			defer database.Close()

			for _, s := range migration.Status(database.Get()) {
				state := "missing"
				if s.Exists {
					state = "ok"
				}
				fmt.Printf("%-20s %s\n", s.Table, state)
			}
			return nil
		},
	}
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}
