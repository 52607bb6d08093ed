package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// MenuRepo provides access to the categories and dishes tables.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo returns a MenuRepo bound to the given database.
func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

// MenuCategory is a category together with its available dishes, as served
// on the menu page.
type MenuCategory struct {
	ID     uint64     `json:"id"`
	Name   string     `json:"name"`
	Dishes []MenuDish `json:"dishes"`
}

// MenuDish is the public shape of one dish.  Price is in euro cents.
type MenuDish struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  uint32   `json:"price_cents"`
	Tags        []string `json:"tags"`
	Allergens   []string `json:"allergens"`
	Image       *string  `json:"image,omitempty"`
	Signature   bool     `json:"signature"`
}

// ListMenu returns every category ordered by rank, each holding its
// available dishes.  Categories without available dishes are included with
// an empty dish list so the menu page can still render the heading.
func (r *MenuRepo) ListMenu(ctx context.Context) ([]MenuCategory, error) {
	const catQ = `SELECT id, name FROM categories ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, catQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []MenuCategory
	index := map[uint64]int{}
	for rows.Next() {
		var c MenuCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		c.Dishes = []MenuDish{}
		index[c.ID] = len(cats)
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const dishQ = `SELECT id, category_id, name, description, price_cents, tags, allergens, image, is_signature
	               FROM dishes WHERE is_available = 1
	               ORDER BY category_id, id`
	drows, err := r.db.QueryContext(ctx, dishQ)
	if err != nil {
		return nil, err
	}
	defer drows.Close()

	for drows.Next() {
		var d MenuDish
		var catID uint64
		var tags, allergens string
		var image sql.NullString
		if err := drows.Scan(&d.ID, &catID, &d.Name, &d.Description, &d.PriceCents, &tags, &allergens, &image, &d.Signature); err != nil {
			return nil, err
		}
		d.Tags = splitCSV(tags)
		d.Allergens = splitCSV(allergens)
		if image.Valid {
			img := image.String
			d.Image = &img
		}
		if i, ok := index[catID]; ok {
			cats[i].Dishes = append(cats[i].Dishes, d)
		}
	}
	return cats, drows.Err()
}

// UpsertCategory inserts a category by unique name or updates its rank, and
// returns the category id.  Used by the seeder.
func (r *MenuRepo) UpsertCategory(ctx context.Context, name string, rank int) (uint64, error) {
	const q = `INSERT INTO categories (name, sort_order) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE sort_order = VALUES(sort_order), id = LAST_INSERT_ID(id)`
	result, err := r.db.ExecContext(ctx, q, name, rank)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return uint64(id), err
}

// UpsertDish inserts a dish by unique (category, name) or refreshes its
// content.  Used by the seeder.
func (r *MenuRepo) UpsertDish(ctx context.Context, d *model.Dish) error {
	const q = `INSERT INTO dishes
	           (category_id, name, description, price_cents, tags, allergens, image, is_signature, is_available)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             description = VALUES(description), price_cents = VALUES(price_cents),
	             tags = VALUES(tags), allergens = VALUES(allergens), image = VALUES(image),
	             is_signature = VALUES(is_signature), is_available = VALUES(is_available)`
	_, err := r.db.ExecContext(ctx, q,
		d.CategoryID, d.Name, d.Description, d.PriceCents,
		strings.Join(d.Tags, ","), strings.Join(d.Allergens, ","),
		d.Image, d.Signature, d.Available,
	)
	return err
}

func splitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
