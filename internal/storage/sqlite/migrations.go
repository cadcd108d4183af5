package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// rsvps.duplicate_key is the normalized (trim + lowercase) key duplicate
// submissions are detected by. The partial unique index is the real
// uniqueness authority: two submissions racing past the client-side check
// still cannot both insert.
const schema = `
CREATE TABLE IF NOT EXISTS invitees (
    id TEXT PRIMARY KEY,
    last_name TEXT NOT NULL,
    has_plus_one INTEGER NOT NULL DEFAULT 0,
    plus_one_name TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rsvps (
    id TEXT PRIMARY KEY,
    guest_name TEXT NOT NULL,
    last_name TEXT NOT NULL DEFAULT '',
    attending INTEGER NOT NULL,
    plus_one_attending INTEGER,
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    number_of_guests INTEGER NOT NULL DEFAULT 0,
    dietary_restrictions TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL DEFAULT '',
    duplicate_key TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_invitees_match ON invitees(lower(trim(last_name)));
CREATE INDEX IF NOT EXISTS idx_rsvps_created_at ON rsvps(created_at);
CREATE UNIQUE INDEX IF NOT EXISTS idx_rsvps_duplicate_key
    ON rsvps(duplicate_key) WHERE duplicate_key != '';
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
