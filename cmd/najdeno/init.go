package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matejg/najdeno/internal/config"
	"github.com/matejg/najdeno/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create and seed the database",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("db", "", "path to SQLite database file")
}

func runInit(cmd *cobra.Command, args []string) error {
	v, err := config.New(flagConfigFile)
	if err != nil {
		return err
	}
	v.BindPFlag(config.KeyDBPath, cmd.Flags().Lookup("db"))

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		return fmt.Errorf("database file %s already exists", cfg.DBPath)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		os.Remove(cfg.DBPath)
		return fmt.Errorf("migrating database: %w", err)
	}
	if err := db.Seed(cmd.Context(), database); err != nil {
		os.Remove(cfg.DBPath)
		return fmt.Errorf("seeding database: %w", err)
	}

	fmt.Printf("Database created and seeded: %s\n", cfg.DBPath)
	return nil
}
