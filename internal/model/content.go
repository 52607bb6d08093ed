package model

import "time"

// Review is a guest review ("avis").  Reviews submitted through the public
// form start unpublished and only appear on the site after moderation.
type Review struct {
	ID        uint64    // reviews.id
	Author    string    // reviews.author
	Email     *string   // reviews.email (nullable, never displayed)
	Rating    int       // reviews.rating, 1..5
	Comment   string    // reviews.comment
	Published bool      // reviews.is_published
	CreatedAt time.Time // reviews.created_at
}

// Article is a blog post.  Slug is the URL segment and is unique.
type Article struct {
	ID          uint64     // articles.id
	Slug        string     // articles.slug (unique)
	Title       string     // articles.title
	Excerpt     string     // articles.excerpt
	Body        string     // articles.body
	Image       *string    // articles.image (nullable URL)
	Published   bool       // articles.is_published
	PublishedAt *time.Time // articles.published_at (nullable)
	CreatedAt   time.Time  // articles.created_at
}

// GalleryImage is one photo in the gallery, ordered by Position.
type GalleryImage struct {
	ID       uint64 // gallery_images.id
	URL      string // gallery_images.url
	Alt      string // gallery_images.alt
	Position int    // gallery_images.position
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        uint64    // contact_messages.id
	Name      string    // contact_messages.name
	Email     string    // contact_messages.email
	Subject   string    // contact_messages.subject
	Body      string    // contact_messages.body
	CreatedAt time.Time // contact_messages.created_at
}

// Subscriber is a newsletter subscription.  Subscribing twice with the same
// email is a no-op.
type Subscriber struct {
	ID        uint64    // subscribers.id
	Email     string    // subscribers.email (unique)
	CreatedAt time.Time // subscribers.created_at
}
