package main

import (
	"fmt"
	"log"

	"opsintel/internal/database"

	"github.com/spf13/cobra"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the query store schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.New(&cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		runner := database.NewMigrationRunner(sqlDB, cfg.Database.Driver)
		if cfg.Database.MigrationsPath != "" {
			runner.WithMigrationsPath(cfg.Database.MigrationsPath)
		}

		if err := runner.WaitForDatabase(); err != nil {
			return err
		}
		if err := runner.RunMigrations(); err != nil {
			return err
		}

		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
		return nil
	},
}
