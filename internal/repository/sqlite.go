package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/text/cases"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type sqliteMigration struct {
	version int
	sql     string
	// fill runs after sql, for data changes SQLite can't express
	fill  func(db *sqlx.DB) error
	after string
}

// sqliteMigrations mirror the goose migrations for the local store.
var sqliteMigrations = []sqliteMigration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL COLLATE NOCASE UNIQUE,
	reminder_minute INTEGER NOT NULL CHECK (reminder_minute BETWEEN 0 AND 1439),
	days            INTEGER NOT NULL DEFAULT 0,
	completed       INTEGER NOT NULL DEFAULT 0,
	vibration       INTEGER NOT NULL DEFAULT 1,
	snooze          INTEGER NOT NULL DEFAULT 1,
	created_at      DATETIME NOT NULL,
	updated_at      DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS habit_history (
	id          TEXT PRIMARY KEY,
	habit_id    TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	record_date TEXT NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('COMPLETED', 'MISSED')),
	UNIQUE (habit_id, record_date)
);

CREATE INDEX IF NOT EXISTS idx_habit_history_date ON habit_history(record_date);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		// NOCASE folds ASCII only; name_key holds the Unicode case fold.
		version: 2,
		sql:     `ALTER TABLE habits ADD COLUMN name_key TEXT NOT NULL DEFAULT '';`,
		fill:    fillNameKeys,
		after: `
CREATE UNIQUE INDEX IF NOT EXISTS idx_habits_name_key ON habits(name_key);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}

// NewSQLiteDB opens (or creates) the local database at path and brings its
// schema up to date. ":memory:" gives a private in-memory database.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

func migrateSQLite(db *sqlx.DB) error {
	currentVersion := 0

	var tableCount int
	err := db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}
	if tableCount > 0 {
		err = db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range sqliteMigrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		if m.fill != nil {
			if err := m.fill(db); err != nil {
				return fmt.Errorf("filling data of migration v%d: %w", m.version, err)
			}
		}
		if m.after != "" {
			if _, err := db.Exec(m.after); err != nil {
				return fmt.Errorf("finishing migration v%d: %w", m.version, err)
			}
		}
	}
	return nil
}

func fillNameKeys(db *sqlx.DB) error {
	var rows []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	if err := db.Select(&rows, `SELECT id, name FROM habits`); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := db.Exec(`UPDATE habits SET name_key = ? WHERE id = ?`, nameKey(r.Name), r.ID); err != nil {
			return err
		}
	}
	return nil
}

// nameKey is the form habit names are compared in, ignoring case.
func nameKey(name string) string {
	return cases.Fold().String(name)
}

func sqliteCode(err error) int {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()
	}
	return 0
}

// The driver reports extended codes; the message check covers builds that
// only report the primary SQLITE_CONSTRAINT.
func isUniqueViolation(err error) bool {
	code := sqliteCode(err)
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		(code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), "UNIQUE"))
}

func isForeignKeyViolation(err error) bool {
	code := sqliteCode(err)
	return code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
		(code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), "FOREIGN KEY"))
}
