package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
	"github.com/Veraticus/foodsaver/internal/model"
	"github.com/Veraticus/foodsaver/internal/service"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import pantry items from CSV files",
		Long: `Import pantry items from CSV files. Expected columns:

  name,quantity,purchase_date,expiry_date,notes

A header row is detected and skipped. Rows exported by 'foodsaver export'
(with a leading id column) are accepted too; the id is ignored so imported
items always get fresh ids.

Examples:
  # Import a single file
  foodsaver import pantry.csv

  # Import everything from a backup directory
  foodsaver import ~/backups/pantry_*.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string, dryRun bool) error {
	ctx := cmd.Context()

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	var items []model.PantryItem
	for _, file := range allFiles {
		fileItems, err := readItemsCSV(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		items = append(items, fileItems...)
	}

	if len(items) == 0 {
		fmt.Println(cli.InfoStyle.Render("Nothing to import."))
		return nil
	}

	if dryRun {
		fmt.Println(cli.FormatTitle("Dry run"))
		for _, item := range items {
			fmt.Printf("  %s (qty %s, expires %s)\n", item.Name, item.Quantity, orDash(item.ExpiryDate))
		}
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("%d item(s) would be imported", len(items))))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	bar := progressbar.Default(int64(len(items)), "Importing items")
	if err := saveAll(ctx, store, items, bar); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d item(s) from %d file(s)", len(items), len(allFiles))))
	return nil
}

func saveAll(ctx context.Context, store service.Storage, items []model.PantryItem, bar *progressbar.ProgressBar) error {
	for i := range items {
		if err := store.SaveItem(ctx, &items[i]); err != nil {
			return fmt.Errorf("failed to save %s: %w", items[i].Name, err)
		}
		_ = bar.Add(1)
	}
	return nil
}

// readItemsCSV parses one CSV file into pantry items.
func readItemsCSV(path string) ([]model.PantryItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var items []model.PantryItem
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Skip header rows and records exported with a leading id column.
		if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "id") {
			continue
		}
		if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}
		if isNumeric(record[0]) && len(record) > 1 {
			record = record[1:]
		}

		item := model.PantryItem{Name: strings.TrimSpace(record[0])}
		if item.Name == "" {
			continue
		}
		if len(record) > 1 {
			item.Quantity = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			item.PurchaseDate = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			item.ExpiryDate = strings.TrimSpace(record[3])
		}
		if len(record) > 4 {
			item.Notes = strings.TrimSpace(record[4])
		}
		items = append(items, item)
	}

	return items, nil
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
