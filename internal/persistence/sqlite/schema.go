package sqlite

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		phone TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id           TEXT PRIMARY KEY,
		client_id    TEXT NOT NULL REFERENCES clients(id),
		client_name  TEXT NOT NULL,
		client_phone TEXT NOT NULL,
		call_type    TEXT NOT NULL CHECK (call_type IN ('onboarding', 'follow-up')),
		date         TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		duration     INTEGER NOT NULL,
		recurring    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_recurring ON bookings(recurring)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(name)`,
}

// Migrate creates the schema when it does not exist yet. Statements are
// idempotent; running Migrate on every startup is safe.
func (cp *ConnectionPool) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := cp.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration statement: %w", err)
		}
	}
	return nil
}
