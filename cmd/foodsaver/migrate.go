package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Initialize or upgrade the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// initStorage runs migrations as part of opening the database.
			store, err := initStorage(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer store.Close()

			fmt.Println(cli.FormatSuccess("Database is up to date"))
			return nil
		},
	}
}
