package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// RestaurantRepo provides access to the single-row restaurants table.
type RestaurantRepo struct {
	db *sql.DB
}

// NewRestaurantRepo returns a RestaurantRepo bound to the given database.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo { return &RestaurantRepo{db: db} }

// Get returns the restaurant profile or ErrRestaurantNotFound when the
// database has not been seeded.
func (r *RestaurantRepo) Get(ctx context.Context) (*model.Restaurant, error) {
	const q = `SELECT id, name, summary, address, phone, email, capacity, hours, created_at, updated_at
	           FROM restaurants LIMIT 1`
	var rest model.Restaurant
	var hours []byte
	err := r.db.QueryRowContext(ctx, q).Scan(
		&rest.ID, &rest.Name, &rest.Summary, &rest.Address, &rest.Phone,
		&rest.Email, &rest.Capacity, &hours, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &rest.Hours); err != nil {
			return nil, err
		}
	}
	return &rest, nil
}

// Upsert writes the restaurant profile, replacing any existing row with the
// same id.  Used by the seeder.
func (r *RestaurantRepo) Upsert(ctx context.Context, rest *model.Restaurant) error {
	hours, err := json.Marshal(rest.Hours)
	if err != nil {
		return err
	}
	const q = `INSERT INTO restaurants (id, name, summary, address, phone, email, capacity, hours)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             name = VALUES(name), summary = VALUES(summary), address = VALUES(address),
	             phone = VALUES(phone), email = VALUES(email), capacity = VALUES(capacity),
	             hours = VALUES(hours)`
	_, err = r.db.ExecContext(ctx, q,
		rest.ID, rest.Name, rest.Summary, rest.Address, rest.Phone,
		rest.Email, rest.Capacity, hours,
	)
	return err
}
