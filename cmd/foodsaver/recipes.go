package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/foodsaver/internal/cli"
	"github.com/Veraticus/foodsaver/internal/match"
	"github.com/Veraticus/foodsaver/internal/model"
	"github.com/Veraticus/foodsaver/internal/service"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Manage recipes and get suggestions",
		Long:  `List, add, and delete recipes, or ask which recipes match the pantry.`,
	}

	cmd.AddCommand(listRecipesCmd())
	cmd.AddCommand(addRecipeCmd())
	cmd.AddCommand(deleteRecipeCmd())
	cmd.AddCommand(suggestCmd())

	return cmd
}

func listRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recipes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			recipes, err := store.ListRecipes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}

			if len(recipes) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recipes yet. Use 'foodsaver recipes add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tName\tIngredients")
			for _, r := range recipes {
				fmt.Fprintf(w, "%d\t%s\t%s\n",
					r.ID, r.Name, strings.Join(match.ParseIngredients(r.Ingredients), ", "))
			}

			return nil
		},
	}
}

func addRecipeCmd() *cobra.Command {
	var (
		ingredients  string
		instructions string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a recipe",
		Long:  `Create a recipe from a name and a comma-separated ingredient list.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			recipe := &model.Recipe{
				Name:         args[0],
				Ingredients:  ingredients,
				Instructions: instructions,
			}
			if err := store.SaveRecipe(ctx, recipe); err != nil {
				return fmt.Errorf("failed to add recipe: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added recipe %q (ID: %d)", recipe.Name, recipe.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&ingredients, "ingredients", "i", "", "comma-separated ingredients (required)")
	cmd.Flags().StringVar(&instructions, "instructions", "", "short instructions")
	_ = cmd.MarkFlagRequired("ingredients")

	return cmd
}

func deleteRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteRecipe(ctx, id); err != nil {
				return fmt.Errorf("failed to delete recipe: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted recipe %d", id)))
			return nil
		},
	}
}

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest recipes from the current pantry",
		Long:  `Rank recipes by how much of their ingredient list the pantry covers.`,
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

			if len(listing.Suggestions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recipe suggestions with current ingredients."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Recipe suggestions"))
			for _, r := range listing.Suggestions {
				fmt.Printf("%s\n", r.Name)
				fmt.Printf("  %s\n", cli.SubtleStyle.Render("Ingredients: "+strings.Join(match.ParseIngredients(r.Ingredients), ", ")))
				if r.Instructions != "" {
					fmt.Printf("  %s\n", cli.SubtleStyle.Render(r.Instructions))
				}
			}

			return nil
		},
	}
}
