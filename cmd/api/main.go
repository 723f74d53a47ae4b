package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/config"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "attendance",
	Short:         "Employee attendance service",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// bootstrap loads the configuration, installs the JSON logger and connects to PostgreSQL.
// The caller must close the returned DB.
func bootstrap(ctx context.Context) (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("env", cfg.App.Env)))

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return cfg, db, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)

	adminCreateCmd.Flags().String("email", "", "admin e-mail address")
	adminCreateCmd.Flags().String("name", "", "admin display name")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("name")
	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}
