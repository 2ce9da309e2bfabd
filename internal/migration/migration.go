// Package migration holds the versioned schema of the catalog database.
// Column types are chosen to work unchanged on SQLite and PostgreSQL: ids are
// text UUIDs generated by the service and timestamps are written by the
// service rather than by database defaults.
package migration

import "laptopxplorer/pkg/sqldb"

// All returns every migration in version order.
func All() []sqldb.Migration {
	return []sqldb.Migration{
		{
			Version:     1,
			Description: "catalog",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS brands (
					id          TEXT PRIMARY KEY,
					name        TEXT NOT NULL UNIQUE,
					slug        TEXT NOT NULL UNIQUE,
					website     TEXT NOT NULL DEFAULT '',
					description TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMP NOT NULL
				)`,
				`CREATE TABLE IF NOT EXISTS categories (
					id          TEXT PRIMARY KEY,
					name        TEXT NOT NULL UNIQUE,
					slug        TEXT NOT NULL UNIQUE,
					description TEXT NOT NULL DEFAULT '',
					icon        TEXT NOT NULL DEFAULT ''
				)`,
				`CREATE TABLE IF NOT EXISTS processors (
					id         TEXT PRIMARY KEY,
					name       TEXT NOT NULL UNIQUE,
					brand      TEXT NOT NULL DEFAULT '',
					cores      INTEGER NOT NULL DEFAULT 0,
					threads    INTEGER NOT NULL DEFAULT 0,
					base_clock DOUBLE PRECISION NOT NULL DEFAULT 0,
					generation TEXT NOT NULL DEFAULT ''
				)`,
				`CREATE TABLE IF NOT EXISTS laptops (
					id                 TEXT PRIMARY KEY,
					name               TEXT NOT NULL,
					slug               TEXT NOT NULL UNIQUE,
					brand_id           TEXT NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
					category_id        TEXT REFERENCES categories(id) ON DELETE SET NULL,
					processor_id       TEXT REFERENCES processors(id) ON DELETE SET NULL,
					model_number       TEXT NOT NULL DEFAULT '',
					description        TEXT NOT NULL DEFAULT '',
					image_url          TEXT NOT NULL DEFAULT '',
					ram_size           INTEGER NOT NULL,
					ram_type           TEXT NOT NULL DEFAULT '',
					storage_size       INTEGER NOT NULL,
					storage_type       TEXT NOT NULL DEFAULT '',
					display_size       DOUBLE PRECISION NOT NULL,
					display_resolution TEXT NOT NULL DEFAULT '',
					refresh_rate       INTEGER NOT NULL DEFAULT 60,
					graphics_type      TEXT NOT NULL DEFAULT '',
					graphics_model     TEXT NOT NULL DEFAULT '',
					battery_life       DOUBLE PRECISION,
					weight             DOUBLE PRECISION NOT NULL,
					operating_system   TEXT NOT NULL DEFAULT '',
					price              NUMERIC(10,2) NOT NULL,
					in_stock           BOOLEAN NOT NULL DEFAULT TRUE,
					views              BIGINT NOT NULL DEFAULT 0,
					created_at         TIMESTAMP NOT NULL,
					updated_at         TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_laptops_brand ON laptops (brand_id)`,
				`CREATE INDEX IF NOT EXISTS idx_laptops_category ON laptops (category_id)`,
			},
		},
		{
			Version:     2,
			Description: "reviews and favorites",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS reviews (
					id         TEXT PRIMARY KEY,
					laptop_id  TEXT NOT NULL REFERENCES laptops(id) ON DELETE CASCADE,
					user_id    TEXT NOT NULL,
					user_email TEXT NOT NULL DEFAULT '',
					score      INTEGER NOT NULL CHECK (score BETWEEN 1 AND 5),
					comment    TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					UNIQUE (laptop_id, user_id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews (user_id)`,
				`CREATE TABLE IF NOT EXISTS favorites (
					user_id    TEXT NOT NULL,
					laptop_id  TEXT NOT NULL REFERENCES laptops(id) ON DELETE CASCADE,
					created_at TIMESTAMP NOT NULL,
					PRIMARY KEY (user_id, laptop_id)
				)`,
			},
		},
		{
			Version:     3,
			Description: "price tracking",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS price_history (
					id           TEXT PRIMARY KEY,
					laptop_id    TEXT NOT NULL REFERENCES laptops(id) ON DELETE CASCADE,
					price        NUMERIC(10,2) NOT NULL,
					retailer     TEXT NOT NULL,
					retailer_url TEXT NOT NULL DEFAULT '',
					in_stock     BOOLEAN NOT NULL DEFAULT TRUE,
					recorded_at  TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_price_history_laptop ON price_history (laptop_id, recorded_at)`,
				`CREATE TABLE IF NOT EXISTS price_alerts (
					id            TEXT PRIMARY KEY,
					user_id       TEXT NOT NULL,
					user_email    TEXT NOT NULL DEFAULT '',
					laptop_id     TEXT NOT NULL REFERENCES laptops(id) ON DELETE CASCADE,
					target_price  NUMERIC(10,2) NOT NULL,
					retailer      TEXT NOT NULL DEFAULT '',
					active        BOOLEAN NOT NULL DEFAULT TRUE,
					created_at    TIMESTAMP NOT NULL,
					last_notified TIMESTAMP,
					UNIQUE (user_id, laptop_id, retailer)
				)`,
			},
		},
		{
			Version:     4,
			Description: "profiles",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS profiles (
					user_id                 TEXT PRIMARY KEY,
					bio                     TEXT NOT NULL DEFAULT '',
					location                TEXT NOT NULL DEFAULT '',
					website                 TEXT NOT NULL DEFAULT '',
					newsletter_subscription BOOLEAN NOT NULL DEFAULT FALSE,
					email_notifications     BOOLEAN NOT NULL DEFAULT TRUE,
					updated_at              TIMESTAMP NOT NULL
				)`,
			},
		},
		{
			Version:     5,
			Description: "articles",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS articles (
					id          TEXT PRIMARY KEY,
					title       TEXT NOT NULL,
					slug        TEXT NOT NULL UNIQUE,
					laptop_id   TEXT REFERENCES laptops(id) ON DELETE SET NULL,
					author_name TEXT NOT NULL DEFAULT '',
					author_bio  TEXT NOT NULL DEFAULT '',
					excerpt     TEXT NOT NULL DEFAULT '',
					content     TEXT NOT NULL DEFAULT '',
					read_time   INTEGER NOT NULL DEFAULT 0,
					published   BOOLEAN NOT NULL DEFAULT FALSE,
					featured    BOOLEAN NOT NULL DEFAULT FALSE,
					views       BIGINT NOT NULL DEFAULT 0,
					created_at  TIMESTAMP NOT NULL,
					updated_at  TIMESTAMP NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles (published, created_at)`,
			},
		},
	}
}
