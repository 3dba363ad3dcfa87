package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotFound is returned by stores when no document exists for a key.
// It is distinct from I/O failures so callers can decide whether defaults are safe.
var ErrNotFound = errors.New("not found")

// migration is one forward-only schema step.
type migration struct {
	version int
	name    string
	stmt    string
}

var migrations = []migration{
	{1, "baseline", `
	CREATE TABLE IF NOT EXISTS athlete (
		id TEXT PRIMARY KEY,
		club_id TEXT NOT NULL,
		name TEXT NOT NULL,
		date_of_birth TEXT,
		gender TEXT NOT NULL DEFAULT '',
		weight REAL NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_athlete_club ON athlete(club_id);

	CREATE TABLE IF NOT EXISTS training_plan (
		club_id TEXT NOT NULL,
		academic_year INTEGER NOT NULL,
		document TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (club_id, academic_year)
	);

	CREATE TABLE IF NOT EXISTS session_evaluation (
		club_id TEXT NOT NULL,
		academic_year INTEGER NOT NULL,
		document TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (club_id, academic_year)
	);

	CREATE TABLE IF NOT EXISTS attendance_register (
		club_id TEXT NOT NULL,
		academic_year INTEGER NOT NULL,
		document TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (club_id, academic_year)
	);
	`},
	{2, "timetable", `
	CREATE TABLE IF NOT EXISTS timetable (
		club_id TEXT NOT NULL,
		academic_year INTEGER NOT NULL DEFAULT 0,
		document TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (club_id, academic_year)
	);
	`},
}

// LatestSchemaVersion returns the version the migration chain ends at.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// SchemaVersion returns the version recorded in schema_version, 0 if none.
// PRE: db is a valid database connection
// POST: Returns the highest applied version
func SchemaVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&v); err != nil {
		return 0, err
	}
	return int(v.Int64), nil
}

// MigrateDB applies pending migrations in order, one transaction each.
// PRE: db is a valid database connection
// POST: Schema is at LatestSchemaVersion; running it again is a no-op
func MigrateDB(db *sql.DB, dbPath string) error {
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	)`); err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version, name) VALUES (?, ?)", m.version, m.name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		slog.Info("schema_migrated", "db", dbPath, "version", m.version, "name", m.name)
	}
	return nil
}
