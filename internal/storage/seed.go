package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/foodsaver/internal/model"
)

// sampleItems and sampleRecipes give a fresh database something to show.
var sampleItems = []model.PantryItem{
	{Name: "Milk", Quantity: "1 L", PurchaseDate: "2025-08-25", ExpiryDate: "2025-09-02", Notes: "2% lactose-free"},
	{Name: "Eggs", Quantity: "12", PurchaseDate: "2025-08-20", ExpiryDate: "2025-09-03", Notes: "Large"},
	{Name: "Spinach", Quantity: "1 bag", PurchaseDate: "2025-08-28", ExpiryDate: "2025-09-01", Notes: "Baby spinach"},
	{Name: "Tomato", Quantity: "3", PurchaseDate: "2025-08-27", ExpiryDate: "2025-09-05"},
	{Name: "Cheddar cheese", Quantity: "200 g", PurchaseDate: "2025-07-20", ExpiryDate: "2025-10-01"},
	{Name: "Bread", Quantity: "1 loaf", PurchaseDate: "2025-08-29", ExpiryDate: "2025-09-01"},
}

var sampleRecipes = []model.Recipe{
	{Name: "Cheesy Scrambled Eggs", Ingredients: "eggs,cheddar cheese,butter,salt,pepper", Instructions: "Beat eggs, melt butter, cook gently, add cheese."},
	{Name: "Tomato Spinach Salad", Ingredients: "tomato,spinach,olive oil,salt,pepper", Instructions: "Toss chopped tomato with spinach and dressing."},
	{Name: "French Toast", Ingredients: "bread,eggs,milk,cinnamon,butter", Instructions: "Dip bread in egg-milk mix and fry."},
}

// Seed inserts the sample items and recipes. Safe to call more than once;
// it appends rather than truncating.
func (s *SQLiteStorage) Seed(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for i := range sampleItems {
		item := sampleItems[i]
		if err := s.SaveItem(ctx, &item); err != nil {
			return fmt.Errorf("failed to seed item %q: %w", item.Name, err)
		}
	}

	for i := range sampleRecipes {
		recipe := sampleRecipes[i]
		if err := s.SaveRecipe(ctx, &recipe); err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipe.Name, err)
		}
	}

	slog.Info("Seeded sample data",
		"items", len(sampleItems),
		"recipes", len(sampleRecipes))
	return nil
}
