package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export pantry items as CSV",
		Long:  `Write all pantry items to stdout or a file in CSV format.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			items, err := store.ListItems(ctx)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			var out io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			w := csv.NewWriter(out)
			if err := w.Write([]string{"id", "name", "quantity", "purchase_date", "expiry_date", "notes"}); err != nil {
				return fmt.Errorf("failed to write CSV header: %w", err)
			}
			for _, item := range items {
				record := []string{
					strconv.FormatInt(item.ID, 10),
					item.Name,
					item.Quantity,
					item.PurchaseDate,
					item.ExpiryDate,
					item.Notes,
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return fmt.Errorf("failed to flush CSV: %w", err)
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d item(s) to %s", len(items), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
