// Package storage provides the data persistence layer for the foodsaver application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/foodsaver/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidID    = errors.New("id must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures a record id is positive.
func validateID(id int64, paramName string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, paramName)
	}
	return nil
}

// validateItem validates a pantry item before writing it. Only the name is
// required; dates are stored as-is and classified leniently at read time.
func validateItem(item *model.PantryItem) error {
	if item == nil {
		return fmt.Errorf("%w: item", ErrNilParameter)
	}
	if err := validateString(item.Name, "item.Name"); err != nil {
		return err
	}
	return nil
}

// validateRecipe validates a recipe before writing it.
func validateRecipe(recipe *model.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("%w: recipe", ErrNilParameter)
	}
	if err := validateString(recipe.Name, "recipe.Name"); err != nil {
		return err
	}
	if err := validateString(recipe.Ingredients, "recipe.Ingredients"); err != nil {
		return err
	}
	return nil
}
