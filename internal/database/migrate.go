package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema lists the DDL statements run by Migrate, in dependency order.
// Every statement is idempotent so Migrate can run at each startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id         VARCHAR(64)  NOT NULL,
		name       VARCHAR(255) NOT NULL,
		summary    TEXT         NOT NULL,
		address    VARCHAR(255) NOT NULL,
		phone      VARCHAR(32)  NOT NULL,
		email      VARCHAR(255) NOT NULL,
		capacity   INT          NOT NULL DEFAULT 0,
		hours      JSON         NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id               VARCHAR(16)  NOT NULL,
		guest_name       VARCHAR(255) NOT NULL,
		email            VARCHAR(255) NOT NULL,
		phone            VARCHAR(32)  NOT NULL,
		date             DATE         NOT NULL,
		time_slot        CHAR(5)      NOT NULL,
		party_size       INT          NOT NULL,
		special_requests TEXT         NULL,
		status           ENUM('PENDING','CONFIRMED','CANCELLED') NOT NULL DEFAULT 'PENDING',
		created_at       TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at       TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_reservations_slot (date, time_slot, status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS categories (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name       VARCHAR(128)    NOT NULL,
		sort_order INT             NOT NULL DEFAULT 0,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_categories_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS dishes (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		category_id  BIGINT UNSIGNED NOT NULL,
		name         VARCHAR(255)    NOT NULL,
		description  TEXT            NOT NULL,
		price_cents  INT UNSIGNED    NOT NULL,
		tags         VARCHAR(512)    NOT NULL DEFAULT '',
		allergens    VARCHAR(512)    NOT NULL DEFAULT '',
		image        VARCHAR(512)    NULL,
		is_signature TINYINT(1)      NOT NULL DEFAULT 0,
		is_available TINYINT(1)      NOT NULL DEFAULT 1,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_dishes_category_name (category_id, name),
		CONSTRAINT fk_dishes_category FOREIGN KEY (category_id) REFERENCES categories (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		author       VARCHAR(255)    NOT NULL,
		email        VARCHAR(255)    NULL,
		rating       INT             NOT NULL,
		comment      TEXT            NOT NULL,
		is_published TINYINT(1)      NOT NULL DEFAULT 0,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_reviews_published (is_published, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS articles (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		slug         VARCHAR(255)    NOT NULL,
		title        VARCHAR(255)    NOT NULL,
		excerpt      TEXT            NOT NULL,
		body         MEDIUMTEXT      NOT NULL,
		image        VARCHAR(512)    NULL,
		is_published TINYINT(1)      NOT NULL DEFAULT 0,
		published_at DATETIME        NULL,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_articles_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS gallery_images (
		id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		url      VARCHAR(512)    NOT NULL,
		alt      VARCHAR(255)    NOT NULL DEFAULT '',
		position INT             NOT NULL DEFAULT 0,
		PRIMARY KEY (id),
		UNIQUE KEY uq_gallery_url (url)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS contact_messages (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name       VARCHAR(255)    NOT NULL,
		email      VARCHAR(255)    NOT NULL,
		subject    VARCHAR(255)    NOT NULL,
		body       TEXT            NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS subscribers (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email      VARCHAR(255)    NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_subscribers_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email         VARCHAR(255)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		role          VARCHAR(32)     NOT NULL DEFAULT 'ADMIN',
		is_active     TINYINT(1)      NOT NULL DEFAULT 1,
		created_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates any missing tables.  It never drops or alters existing
// columns; destructive changes are applied by hand.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}
