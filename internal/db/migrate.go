package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/record"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyCollectionNames(db); err != nil {
		return fmt.Errorf("renaming legacy collections: %w", err)
	}
	return nil
}

// legacyCollections maps collection names written by early builds to the
// current ones.
var legacyCollections = map[string]record.Collection{
	"canvas_items":      record.CollectionCanvas,
	"pricing_items":     record.CollectionPricing,
	"customer_segments": record.CollectionSegments,
	"riskClients":       record.CollectionRiskClients,
}

func migrateLegacyCollectionNames(db *sql.DB) error {
	for old, current := range legacyCollections {
		if _, err := db.Exec(`UPDATE OR IGNORE records SET collection = ? WHERE collection = ?`, string(current), old); err != nil {
			return fmt.Errorf("renaming %s: %w", old, err)
		}
		if _, err := db.Exec(`DELETE FROM records WHERE collection = ?`, old); err != nil {
			return fmt.Errorf("dropping leftover %s rows: %w", old, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		short_id   TEXT NOT NULL,
		name       TEXT NOT NULL,
		owner      TEXT NOT NULL DEFAULT '',
		activity   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_plans_short_id ON plans(short_id)`,

	`CREATE TABLE IF NOT EXISTS records (
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		collection TEXT NOT NULL,
		id         TEXT NOT NULL CHECK(id != ''),
		position   INTEGER NOT NULL,
		body       TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (plan_id, collection, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_order ON records(plan_id, collection, position)`,

	`ALTER TABLE plans ADD COLUMN currency TEXT NOT NULL DEFAULT 'EUR'`,
}
