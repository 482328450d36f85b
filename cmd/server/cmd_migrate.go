package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minesight/rockfall-backend-go/internal/config"
	"github.com/minesight/rockfall-backend-go/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer database.Close()

	fmt.Println("Migrations applied successfully")
	return nil
}
