// Package seed implements the `nexportal seed` command.
package seed

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nexorbs/nexportal/internal/infrastructure/config"
	"github.com/nexorbs/nexportal/internal/infrastructure/database"
	"github.com/nexorbs/nexportal/internal/infrastructure/migration"
	"github.com/nexorbs/nexportal/internal/infrastructure/persistence/seeds"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load development fixtures into the database",
		Long:  "Insert a fixed admin, client and developer account plus a sample project and ticket. Refuses to run in release mode.",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Fixtures carry well-known credentials; a production database must
	// never receive them.
	if cfg.Server.Mode == gin.ReleaseMode {
		return fmt.Errorf("seed refuses to run in release mode")
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	if err := migration.Run(database.Get(), log); err != nil {
		return err
	}

	if err := seeds.SeedPortalData(database.Get()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("fixtures loaded", "password", seeds.SeedPassword)
	return nil
}
