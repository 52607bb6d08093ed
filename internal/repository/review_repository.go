package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// ReviewRepo provides access to the reviews table.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ListPublished returns published reviews, newest first.  The submitter's
// email is never included.
func (r *ReviewRepo) ListPublished(ctx context.Context) ([]model.Review, error) {
	const q = `SELECT id, author, rating, comment, created_at
	           FROM reviews WHERE is_published = 1
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.Author, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		rv.Published = true
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Create stores a new review.  Reviews always start unpublished; they reach
// the site only after an admin publishes them.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	const q = `INSERT INTO reviews (author, email, rating, comment, is_published)
	           VALUES (?, ?, ?, ?, 0)`
	result, err := r.db.ExecContext(ctx, q, rv.Author, rv.Email, rv.Rating, rv.Comment)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	rv.Published = false
	return nil
}

// Publish marks a review as published.  Returns ErrReviewNotFound when the
// id does not exist.
func (r *ReviewRepo) Publish(ctx context.Context, id uint64) error {
	const q = `UPDATE reviews SET is_published = 1 WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is also zero when the review was already published;
		// check existence to keep the not-found contract honest.
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM reviews WHERE id = ?`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrReviewNotFound
			}
			return err
		}
	}
	return nil
}
