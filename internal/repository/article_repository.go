package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// ArticleRepo provides access to the articles table.
type ArticleRepo struct {
	db *sql.DB
}

// NewArticleRepo returns an ArticleRepo bound to the given database.
func NewArticleRepo(db *sql.DB) *ArticleRepo { return &ArticleRepo{db: db} }

// ListPublished returns published articles without their body, newest
// publication first.
func (r *ArticleRepo) ListPublished(ctx context.Context) ([]model.Article, error) {
	const q = `SELECT id, slug, title, excerpt, image, published_at, created_at
	           FROM articles WHERE is_published = 1
	           ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Article, 0)
	for rows.Next() {
		var a model.Article
		var image sql.NullString
		var publishedAt sql.NullTime
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Excerpt, &image, &publishedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Published = true
		if image.Valid {
			img := image.String
			a.Image = &img
		}
		if publishedAt.Valid {
			t := publishedAt.Time
			a.PublishedAt = &t
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetBySlug returns one published article including its body, or
// ErrArticleNotFound.
func (r *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	const q = `SELECT id, slug, title, excerpt, body, image, published_at, created_at
	           FROM articles WHERE slug = ? AND is_published = 1`
	var a model.Article
	var image sql.NullString
	var publishedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, q, slug).Scan(
		&a.ID, &a.Slug, &a.Title, &a.Excerpt, &a.Body, &image, &publishedAt, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Published = true
	if image.Valid {
		img := image.String
		a.Image = &img
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		a.PublishedAt = &t
	}
	return &a, nil
}

// Upsert inserts an article by unique slug or refreshes its content.  Used
// by the seeder.
func (r *ArticleRepo) Upsert(ctx context.Context, a *model.Article) error {
	const q = `INSERT INTO articles (slug, title, excerpt, body, image, is_published, published_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             title = VALUES(title), excerpt = VALUES(excerpt), body = VALUES(body),
	             image = VALUES(image), is_published = VALUES(is_published),
	             published_at = VALUES(published_at)`
	_, err := r.db.ExecContext(ctx, q, a.Slug, a.Title, a.Excerpt, a.Body, a.Image, a.Published, a.PublishedAt)
	return err
}
