package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'collector' CHECK (role IN ('admin', 'collector')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS user_favorites (
    user_id    INTEGER NOT NULL REFERENCES users(id),
    artwork_id INTEGER NOT NULL REFERENCES artworks(id),
    PRIMARY KEY (user_id, artwork_id)
);

CREATE TABLE IF NOT EXISTS artworks (
    id                 INTEGER PRIMARY KEY,
    title              TEXT NOT NULL,
    slug               TEXT NOT NULL,
    description        TEXT,
    images             TEXT NOT NULL DEFAULT '[]',
    video_url          TEXT,
    price              REAL NOT NULL CHECK (price > 0),
    status             TEXT NOT NULL DEFAULT 'Available' CHECK (status IN ('Available', 'Reserved', 'Sold')),
    size               TEXT NOT NULL DEFAULT 'Medium' CHECK (size IN ('Small', 'Medium', 'Large')),
    tone               TEXT NOT NULL DEFAULT 'Balanced' CHECK (tone IN ('Cool', 'Warm', 'Balanced')),
    edition_count      INTEGER NOT NULL DEFAULT 1 CHECK (edition_count > 0),
    dimensions         TEXT,
    materials          TEXT,
    payment_url        TEXT,
    show_in_collection INTEGER NOT NULL DEFAULT 1,
    created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_artworks_slug ON artworks(slug);

CREATE TABLE IF NOT EXISTS orders (
    id              INTEGER PRIMARY KEY,
    reference       TEXT NOT NULL,
    user_id         INTEGER REFERENCES users(id),
    artwork_id      INTEGER NOT NULL REFERENCES artworks(id),
    payment_method  TEXT NOT NULL,
    payment_status  TEXT NOT NULL DEFAULT 'awaiting_payment'
        CHECK (payment_status IN ('awaiting_payment', 'needs_review', 'paid', 'failed', 'refunded')),
    shipping_status TEXT NOT NULL DEFAULT 'created'
        CHECK (shipping_status IN ('created', 'processing', 'shipped', 'delivered', 'cancelled')),
    payment_proof   TEXT,
    tracking_number TEXT,
    created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_reference ON orders(reference);

CREATE TABLE IF NOT EXISTS commissions (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL,
    size_request  TEXT NOT NULL,
    color_palette TEXT NOT NULL,
    description   TEXT NOT NULL,
    budget        TEXT NOT NULL,
    timeline      TEXT NOT NULL,
    notes         TEXT,
    status        TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'in_review', 'responded', 'closed')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_commissions_status ON commissions(status);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{}

// Migrate creates the schema and runs pending migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
