package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample items and recipes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Seed(ctx); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Seeded sample data"))
			return nil
		},
	}
}
