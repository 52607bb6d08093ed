package model

import "time"

// Category groups dishes on the menu ("Entrées", "Plats principaux", ...).
// Rank controls display order, lowest first.
type Category struct {
	ID        uint64    // categories.id
	Name      string    // categories.name (unique)
	Rank      int       // categories.sort_order, lowest shown first
	CreatedAt time.Time // categories.created_at
}

// Dish is a single menu item.  Tags and Allergens are stored as
// comma-separated lists in the database and split when served, matching how
// the content was originally authored.
type Dish struct {
	ID          uint64    // dishes.id
	CategoryID  uint64    // dishes.category_id
	Name        string    // dishes.name
	Description string    // dishes.description
	PriceCents  uint32    // dishes.price_cents
	Tags        []string  // dishes.tags (csv)
	Allergens   []string  // dishes.allergens (csv)
	Image       *string   // dishes.image (nullable URL)
	Signature   bool      // dishes.is_signature, featured on the home page
	Available   bool      // dishes.is_available
	CreatedAt   time.Time // dishes.created_at
	UpdatedAt   time.Time // dishes.updated_at
}
