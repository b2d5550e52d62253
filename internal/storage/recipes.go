package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/foodsaver/internal/common"
	"github.com/Veraticus/foodsaver/internal/model"
)

// SaveRecipe inserts a new recipe and assigns its id. Ingredients are kept
// as the raw comma-delimited text; tokenization is the matcher's concern.
func (s *SQLiteStorage) SaveRecipe(ctx context.Context, recipe *model.Recipe) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecipe(recipe); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (name, ingredients, instructions)
		VALUES (?, ?, ?)`,
		recipe.Name, recipe.Ingredients, recipe.Instructions)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get recipe id: %w", err)
	}
	recipe.ID = id

	slog.Debug("saved recipe", "id", recipe.ID, "name", recipe.Name)
	return nil
}

// GetRecipe returns the recipe with the given id, or ErrNotFound.
func (s *SQLiteStorage) GetRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	var recipe model.Recipe
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, ingredients, instructions, created_at
		FROM recipes
		WHERE id = ?`, id).Scan(
		&recipe.ID, &recipe.Name, &recipe.Ingredients, &recipe.Instructions, &recipe.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: recipe %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe: %w", err)
	}

	return &recipe, nil
}

// ListRecipes returns the full recipe catalog ordered by insertion id.
// Matching relies on this order being stable so that score ties always
// resolve the same way.
func (s *SQLiteStorage) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, ingredients, instructions, created_at
		FROM recipes
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var recipe model.Recipe
		if err := rows.Scan(
			&recipe.ID, &recipe.Name, &recipe.Ingredients, &recipe.Instructions, &recipe.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}

	slog.Debug("retrieved recipes", "count", len(recipes))
	return recipes, nil
}

// DeleteRecipe removes a recipe by id.
func (s *SQLiteStorage) DeleteRecipe(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: recipe %d", common.ErrNotFound, id)
	}

	return nil
}
