package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           INTEGER PRIMARY KEY,
    name         TEXT NOT NULL,
    category     TEXT NOT NULL,
    description  TEXT NOT NULL,
    color        TEXT NOT NULL,
    date_found   TEXT NOT NULL,
    found_at     TEXT NOT NULL,
    photo        BLOB,
    photo_mime   TEXT,
    is_claimed   INTEGER NOT NULL DEFAULT 0 CHECK (is_claimed IN (0, 1)),
    date_updated DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_unclaimed
    ON items(date_found DESC) WHERE is_claimed = 0;

CREATE TABLE IF NOT EXISTS employees (
    id            INTEGER PRIMARY KEY,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    position      TEXT NOT NULL,
    items_managed INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS claims (
    id                  INTEGER PRIMARY KEY,
    item_id             INTEGER NOT NULL REFERENCES items(id),
    owner_first_name    TEXT NOT NULL,
    owner_last_name     TEXT NOT NULL,
    verification_code   TEXT NOT NULL,
    claim_date          TEXT NOT NULL DEFAULT (date('now')),
    verification_status TEXT NOT NULL DEFAULT 'Pending'
        CHECK (verification_status IN ('Pending', 'Approved', 'Rejected')),
    handled_by          INTEGER REFERENCES employees(id)
);

CREATE INDEX IF NOT EXISTS idx_claims_pending
    ON claims(item_id) WHERE verification_status = 'Pending';

CREATE TABLE IF NOT EXISTS item_status (
    id          INTEGER PRIMARY KEY,
    item_id     INTEGER NOT NULL REFERENCES items(id),
    status      TEXT NOT NULL,
    status_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_item_status_item
    ON item_status(item_id, status_date DESC);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{}

// Migrate creates the schema and runs the database migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}

// seedEmployees is the starter staff roster inserted on first run.
var seedEmployees = [][3]string{
	{"Ana", "Kovač", "Front Desk"},
	{"Marko", "Horvat", "Security"},
	{"Petra", "Novak", "Operations Manager"},
}

// Seed inserts the starter employee roster if the employees table is
// empty. Running it again is a no-op.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return fmt.Errorf("counting employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, e := range seedEmployees {
		_, err := db.ExecContext(ctx,
			`INSERT INTO employees (first_name, last_name, position) VALUES (?, ?, ?)`,
			e[0], e[1], e[2],
		)
		if err != nil {
			return fmt.Errorf("seeding employee %s %s: %w", e[0], e[1], err)
		}
	}

	return nil
}
