package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/foodsaver/internal/model"
)

func TestRecipes(t *testing.T) {
	scrambledEggs := model.Recipe{ID: 1, Name: "Cheesy Scrambled Eggs", Ingredients: "eggs,cheddar cheese,butter,salt,pepper"}
	salad := model.Recipe{ID: 2, Name: "Tomato Spinach Salad", Ingredients: "tomato,spinach,olive oil,salt,pepper"}
	frenchToast := model.Recipe{ID: 3, Name: "French Toast", Ingredients: "bread,eggs,milk,cinnamon,butter"}
	catalog := []model.Recipe{scrambledEggs, salad, frenchToast}

	t.Run("full coverage is included", func(t *testing.T) {
		available := []string{"eggs", "cheddar cheese", "butter", "salt", "pepper"}
		got := Recipes(available, catalog)
		require.NotEmpty(t, got)
		assert.Equal(t, "Cheesy Scrambled Eggs", got[0].Name)
	})

	t.Run("below threshold is excluded", func(t *testing.T) {
		// 1 of 5 ingredients present scores 0.2, under the 0.5 cutoff.
		got := Recipes([]string{"bread"}, catalog)
		assert.Empty(t, got)
	})

	t.Run("empty pantry matches nothing", func(t *testing.T) {
		assert.Empty(t, Recipes(nil, catalog))
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		assert.Empty(t, Recipes([]string{"eggs"}, nil))
	})

	t.Run("ranked by descending coverage", func(t *testing.T) {
		available := []string{"eggs", "cheddar cheese", "butter", "salt", "pepper", "bread", "milk"}
		got := Recipes(available, catalog)
		require.Len(t, got, 2)
		assert.Equal(t, "Cheesy Scrambled Eggs", got[0].Name) // 5/5
		assert.Equal(t, "French Toast", got[1].Name)          // 4/5
	})

	t.Run("available names are case-insensitive", func(t *testing.T) {
		available := []string{" EGGS ", "Cheddar Cheese", "Butter", "salt", "PEPPER"}
		got := Recipes(available, catalog)
		require.NotEmpty(t, got)
		assert.Equal(t, "Cheesy Scrambled Eggs", got[0].Name)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		a := model.Recipe{Name: "A", Ingredients: "eggs,milk"}
		b := model.Recipe{Name: "B", Ingredients: "eggs,butter"}
		c := model.Recipe{Name: "C", Ingredients: "eggs,flour"}

		got := Recipes([]string{"eggs"}, []model.Recipe{a, b, c})
		require.Len(t, got, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].Name, got[1].Name, got[2].Name})
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		available := []string{"eggs", "milk", "bread", "butter"}
		first := Recipes(available, catalog)
		second := Recipes(available, catalog)
		assert.Equal(t, first, second)
	})
}

func TestScore(t *testing.T) {
	available := toSet([]string{"eggs", "milk"})

	t.Run("partial coverage", func(t *testing.T) {
		assert.InDelta(t, 0.4, score([]string{"eggs", "milk", "bread", "cinnamon", "butter"}, available), 1e-9)
	})

	t.Run("zero required ingredients scores zero", func(t *testing.T) {
		assert.Zero(t, score(nil, available))
	})

	t.Run("full coverage", func(t *testing.T) {
		assert.Equal(t, 1.0, score([]string{"eggs", "milk"}, available))
	})
}
