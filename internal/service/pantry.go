package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Veraticus/foodsaver/internal/expiry"
	"github.com/Veraticus/foodsaver/internal/match"
)

// Pantry produces listing views and reminder inputs from stored records.
// It snapshots storage reads and hands them to the pure expiry and match
// packages; it holds no state of its own between calls.
type Pantry struct {
	storage Storage
}

// NewPantry creates a new Pantry service.
func NewPantry(storage Storage) *Pantry {
	return &Pantry{storage: storage}
}

// Listing returns all pantry items enriched with expiry state, sorted by
// ascending days-until-expiry (unknown last), plus recipe suggestions
// matched against the item names. Items with malformed expiry dates are
// listed as unknown rather than dropped.
func (p *Pantry) Listing(ctx context.Context, today time.Time) (*Listing, error) {
	items, err := p.storage.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	listed := make([]ListedItem, 0, len(items))
	available := make([]string, 0, len(items))
	for _, item := range items {
		days, ok := expiry.DaysUntil(item.ExpiryDate, today)
		listed = append(listed, ListedItem{
			PantryItem: item,
			Days:       days,
			HasDays:    ok,
			Category:   expiry.Categorize(days, ok),
		})
		available = append(available, item.Name)
	}

	sort.SliceStable(listed, func(i, j int) bool {
		return expiry.SortKey(listed[i].Days, listed[i].HasDays) < expiry.SortKey(listed[j].Days, listed[j].HasDays)
	})

	catalog, err := p.storage.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	suggestions := match.Recipes(available, catalog)
	slog.Debug("built pantry listing",
		"items", len(listed),
		"recipes", len(catalog),
		"suggestions", len(suggestions))

	return &Listing{Items: listed, Suggestions: suggestions}, nil
}

// ExpiringWithin returns items whose expiry is known and at most window
// days away, including already expired items, sorted soonest first.
func (p *Pantry) ExpiringWithin(ctx context.Context, today time.Time, window int) ([]ListedItem, error) {
	items, err := p.storage.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	expiring := make([]ListedItem, 0, len(items))
	for _, item := range items {
		days, ok := expiry.DaysUntil(item.ExpiryDate, today)
		if !ok || days > window {
			continue
		}
		expiring = append(expiring, ListedItem{
			PantryItem: item,
			Days:       days,
			HasDays:    true,
			Category:   expiry.Categorize(days, true),
		})
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].Days < expiring[j].Days
	})

	return expiring, nil
}
