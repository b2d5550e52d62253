package model

import "time"

// Recipe represents a recipe keyed by the ingredients it requires.
// Ingredients holds the raw comma-delimited text as entered; parsing into
// normalized tokens happens at the matching boundary.
type Recipe struct {
	CreatedAt    time.Time
	Name         string
	Ingredients  string
	Instructions string
	ID           int64
}
