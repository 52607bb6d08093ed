package repository

import (
	"context"
	"database/sql"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// GalleryRepo provides access to the gallery_images table.
type GalleryRepo struct {
	db *sql.DB
}

// NewGalleryRepo returns a GalleryRepo bound to the given database.
func NewGalleryRepo(db *sql.DB) *GalleryRepo { return &GalleryRepo{db: db} }

// List returns every gallery image ordered by position.
func (r *GalleryRepo) List(ctx context.Context) ([]model.GalleryImage, error) {
	const q = `SELECT id, url, alt, position FROM gallery_images ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.GalleryImage, 0)
	for rows.Next() {
		var img model.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Alt, &img.Position); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// Upsert inserts an image by unique URL or updates its caption and position.
// Used by the seeder.
func (r *GalleryRepo) Upsert(ctx context.Context, img *model.GalleryImage) error {
	const q = `INSERT INTO gallery_images (url, alt, position) VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE alt = VALUES(alt), position = VALUES(position)`
	_, err := r.db.ExecContext(ctx, q, img.URL, img.Alt, img.Position)
	return err
}

// ContactRepo provides access to the contact_messages table.
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo returns a ContactRepo bound to the given database.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

// Create stores a contact form submission.
func (r *ContactRepo) Create(ctx context.Context, m *model.ContactMessage) error {
	const q = `INSERT INTO contact_messages (name, email, subject, body) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, m.Name, m.Email, m.Subject, m.Body)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// SubscriberRepo provides access to the subscribers table.
type SubscriberRepo struct {
	db *sql.DB
}

// NewSubscriberRepo returns a SubscriberRepo bound to the given database.
func NewSubscriberRepo(db *sql.DB) *SubscriberRepo { return &SubscriberRepo{db: db} }

// Subscribe records a newsletter subscription.  Subscribing an email that is
// already on the list is a silent no-op.
func (r *SubscriberRepo) Subscribe(ctx context.Context, email string) error {
	const q = `INSERT INTO subscribers (email) VALUES (?)
	           ON DUPLICATE KEY UPDATE email = email`
	_, err := r.db.ExecContext(ctx, q, email)
	return err
}
