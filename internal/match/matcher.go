package match

import (
	"sort"

	"github.com/Veraticus/foodsaver/internal/model"
)

// scoreThreshold is the minimum fraction of a recipe's required ingredients
// that must be on hand for the recipe to count as a match.
const scoreThreshold = 0.5

// scored pairs a recipe with its coverage score during ranking. The score is
// internal; callers only see the resulting order.
type scored struct {
	recipe model.Recipe
	score  float64
}

// Recipes returns the recipes from catalog whose required ingredients are at
// least half covered by the available ingredient names, ranked by descending
// coverage. Recipes tied on coverage keep their catalog order, so identical
// inputs always produce identical output. An empty catalog or empty
// available set yields an empty result, never an error.
func Recipes(available []string, catalog []model.Recipe) []model.Recipe {
	availableSet := toSet(available)

	matches := make([]scored, 0, len(catalog))
	for _, rec := range catalog {
		s := score(ParseIngredients(rec.Ingredients), availableSet)
		if s >= scoreThreshold {
			matches = append(matches, scored{recipe: rec, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]model.Recipe, len(matches))
	for i, m := range matches {
		result[i] = m.recipe
	}
	return result
}

// score computes |required ∩ available| / max(1, |required|). The guard
// keeps a recipe with zero parsed ingredients at score 0 instead of
// dividing by zero.
func score(required []string, available map[string]bool) float64 {
	matched := 0
	for _, ing := range required {
		if available[ing] {
			matched++
		}
	}

	denom := len(required)
	if denom < 1 {
		denom = 1
	}
	return float64(matched) / float64(denom)
}
