package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Connect opens the settlement archive database. The archive is optional:
// the live session state is in-memory and the caller treats a missing
// configuration as "archive disabled" rather than a startup failure.
func Connect(host, port, user, password, dbname, sslmode string) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the archive tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS shift_settlements (
	id              TEXT PRIMARY KEY,
	bu              TEXT NOT NULL,
	settlement_date TEXT NOT NULL,
	total_sales     DOUBLE PRECISION NOT NULL,
	cash_expected   DOUBLE PRECISION NOT NULL,
	other_expected  DOUBLE PRECISION NOT NULL,
	counted_cash    DOUBLE PRECISION NOT NULL,
	variance        DOUBLE PRECISION NOT NULL,
	note            TEXT NOT NULL,
	closed_at       TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS archived_orders (
	id             TEXT PRIMARY KEY,
	settlement_id  TEXT NOT NULL REFERENCES shift_settlements(id),
	bu             TEXT NOT NULL,
	source_id      TEXT NOT NULL,
	status         TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	total_amount   DOUBLE PRECISION NOT NULL,
	lines          JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("could not apply archive schema: %w", err)
	}
	return nil
}
