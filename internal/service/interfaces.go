// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/foodsaver/internal/expiry"
	"github.com/Veraticus/foodsaver/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Item operations
	SaveItem(ctx context.Context, item *model.PantryItem) error
	GetItem(ctx context.Context, id int64) (*model.PantryItem, error)
	ListItems(ctx context.Context) ([]model.PantryItem, error)
	UpdateItem(ctx context.Context, item *model.PantryItem) error
	DeleteItem(ctx context.Context, id int64) error

	// Recipe operations
	SaveRecipe(ctx context.Context, recipe *model.Recipe) error
	GetRecipe(ctx context.Context, id int64) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error

	// Database management
	Seed(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// EmailSender delivers a plain-text message to a list of recipients.
type EmailSender interface {
	Send(ctx context.Context, subject, body string, to []string) error
}

// ListedItem is a pantry item enriched with its derived expiry state for
// presentation. Days is only meaningful when HasDays is true.
type ListedItem struct {
	model.PantryItem
	Category expiry.Category
	Days     int
	HasDays  bool
}

// Listing is one fully rendered pantry view: items sorted by urgency plus
// the recipes suggested from what is on hand.
type Listing struct {
	Items       []ListedItem
	Suggestions []model.Recipe
}

// RetryOptions configures retry behavior for operations that may fail
// transiently.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
