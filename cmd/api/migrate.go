package main

import (
	"fmt"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.MigrateUp(db.Pool); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}

		status, err := migrations.CheckDBMigrationStatus(db.Pool)
		if err != nil {
			return err
		}
		fmt.Printf("Schema at version %d\n", status.Current)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		status, err := migrations.CheckDBMigrationStatus(db.Pool)
		fmt.Printf("Current: %d\nLatest:  %d\nDirty:   %t\n", status.Current, status.Latest, status.Dirty)
		return err
	},
}
