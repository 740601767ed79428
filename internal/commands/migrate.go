package commands

import (
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(
		newMigrateStepCommand("up", "Apply all pending migrations", database.MigrateUp),
		newMigrateStepCommand("down", "Roll back the latest migration", database.MigrateDown),
	)

	return cmd
}

func newMigrateStepCommand(use, short string, direction database.MigrationDirection) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if path == "" {
				path = cfg.MigrationsPath
			}
			return database.Migrate(cfg.DatabaseURL, path, direction, newLogger())
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "migration source URL (defaults to MIGRATIONS_PATH)")

	return cmd
}
