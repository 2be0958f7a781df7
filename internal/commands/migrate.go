package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"expense-api/internal/config"
	"expense-api/internal/database"

	"gorm.io/gorm/logger"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd)
		},
	}
}

func runMigrate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	newLogger(&cfg.Logging, cmd.ErrOrStderr())

	db, err := database.New(&cfg.Database, logger.Warn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("getting sql.DB: %w", err)
		}
		version, dirty, err := database.NewMigrationRunner(sqlDB).GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("reading migration status: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d (dirty: %t)\n", version, dirty)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", cfg.Database.Driver)
	return nil
}
