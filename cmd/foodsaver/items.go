package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
	"github.com/Veraticus/foodsaver/internal/model"
	"github.com/Veraticus/foodsaver/internal/service"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage pantry items",
		Long:  `List, add, edit, and delete pantry items with their expiry dates.`,
	}

	cmd.AddCommand(listItemsCmd())
	cmd.AddCommand(addItemCmd())
	cmd.AddCommand(editItemCmd())
	cmd.AddCommand(deleteItemCmd())

	return cmd
}

func listItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pantry items",
		Long:  `Display all pantry items sorted by days until expiry, with urgency badges.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			listing, err := service.NewPantry(store).Listing(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to load pantry: %w", err)
			}

			if len(listing.Items) == 0 {
				fmt.Println(cli.InfoStyle.Render("No items yet. Use 'foodsaver items add' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Pantry"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tName\tQty\tExpiry\tDays\tStatus")
			for _, item := range listing.Items {
				days := "—"
				if item.HasDays {
					days = strconv.Itoa(item.Days)
				}
				expiryDate := item.ExpiryDate
				if expiryDate == "" {
					expiryDate = "—"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					item.ID, item.Name, item.Quantity, expiryDate, days,
					cli.FormatCategory(item.Category))
			}

			return nil
		},
	}
}

func addItemCmd() *cobra.Command {
	var (
		quantity     string
		purchaseDate string
		expiryDate   string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a pantry item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			item := &model.PantryItem{
				Name:         args[0],
				Quantity:     quantity,
				PurchaseDate: purchaseDate,
				ExpiryDate:   expiryDate,
				Notes:        notes,
			}
			if err := store.SaveItem(ctx, item); err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (ID: %d)", item.Name, item.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&quantity, "quantity", "q", "1", "quantity, free text (e.g. '1 L')")
	cmd.Flags().StringVar(&purchaseDate, "purchased", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&expiryDate, "expires", "e", "", "expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")

	return cmd
}

func editItemCmd() *cobra.Command {
	var (
		name         string
		quantity     string
		purchaseDate string
		expiryDate   string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a pantry item",
		Long:  `Update fields of an existing item. Unset flags keep their current values.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			item, err := store.GetItem(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to load item: %w", err)
			}

			if cmd.Flags().Changed("name") {
				item.Name = name
			}
			if cmd.Flags().Changed("quantity") {
				item.Quantity = quantity
			}
			if cmd.Flags().Changed("purchased") {
				item.PurchaseDate = purchaseDate
			}
			if cmd.Flags().Changed("expires") {
				item.ExpiryDate = expiryDate
			}
			if cmd.Flags().Changed("notes") {
				item.Notes = notes
			}

			if err := store.UpdateItem(ctx, item); err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %q (ID: %d)", item.Name, item.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVarP(&quantity, "quantity", "q", "", "quantity")
	cmd.Flags().StringVar(&purchaseDate, "purchased", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&expiryDate, "expires", "e", "", "expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")

	return cmd
}

func deleteItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pantry item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteItem(ctx, id); err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted item %d", id)))
			return nil
		},
	}
}
