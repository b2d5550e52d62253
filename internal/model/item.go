// Package model defines the core domain models used throughout the application.
package model

import "time"

// PantryItem represents a single perishable item tracked in the pantry.
// PurchaseDate and ExpiryDate hold raw YYYY-MM-DD text; either may be empty
// or malformed, in which case expiry classification degrades to unknown
// rather than failing the listing.
type PantryItem struct {
	CreatedAt    time.Time
	Name         string
	Quantity     string // free text, e.g. "1 L" or "12"
	PurchaseDate string
	ExpiryDate   string
	Notes        string
	ID           int64
}
