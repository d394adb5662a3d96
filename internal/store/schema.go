// Package store persists model runs to SQLite so projections can be
// revisited and compared without re-entering parameters.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the run store.
const schemaV1 = `
-- One row per saved model run
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    target_year INTEGER NOT NULL,

    -- Full parameter map as JSON, for exact reproduction
    params_json TEXT NOT NULL,

    -- Summary statistics (denormalized for list queries)
    crossover_year INTEGER,
    compute_sufficiency_year INTEGER,
    final_ai_share REAL,
    final_human_share REAL,
    final_unmet_hours REAL
);

-- Per-year aggregates (denormalized; tier detail lives in the JSON)
CREATE TABLE IF NOT EXISTS run_years (
    run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    year INTEGER NOT NULL,
    total_demand_hours REAL NOT NULL,
    hours_ai REAL NOT NULL,
    hours_human REAL NOT NULL,
    hours_unmet REAL NOT NULL,
    scarcity_premium REAL NOT NULL,
    primary_constraint TEXT NOT NULL,
    projection_json TEXT NOT NULL,
    PRIMARY KEY (run_id, year)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// InitSchema creates all tables and records the schema version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}

	return nil
}
