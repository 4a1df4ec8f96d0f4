package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"frontier-mapgen/internal/logger"
)

// DB wraps the SQLite map database.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database at path and creates the schema.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Entity id columns are TEXT: some source identifiers exceed a signed
// 64-bit range.
func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
		CREATE TABLE IF NOT EXISTS regions (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			center_x REAL,
			center_y REAL,
			center_z REAL,
			hidden   INTEGER NOT NULL DEFAULT 0,
			nebula   TEXT
		);

		CREATE TABLE IF NOT EXISTS constellations (
			id        TEXT PRIMARY KEY,
			name      TEXT NOT NULL,
			region_id TEXT,
			center_x  REAL,
			center_y  REAL,
			center_z  REAL,
			lines     TEXT,
			hidden    INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_constellations_region ON constellations(region_id);

		CREATE TABLE IF NOT EXISTS systems (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			constellation_id TEXT,
			region_id        TEXT,
			center_x         REAL,
			center_y         REAL,
			center_z         REAL,
			pos_x            REAL,
			pos_y            REAL,
			pos_z            REAL,
			security_class   TEXT,
			security_status  REAL,
			star_class       TEXT,
			hidden           INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_systems_region ON systems(region_id);
		CREATE INDEX IF NOT EXISTS idx_systems_constellation ON systems(constellation_id);

		CREATE TABLE IF NOT EXISTS stargates (
			id                    INTEGER PRIMARY KEY,
			name                  TEXT NOT NULL,
			source_system_id      TEXT NOT NULL,
			destination_system_id TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_stargates_source ON stargates(source_system_id);

		CREATE TABLE IF NOT EXISTS labels (
			id   TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			type TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS region_labels (
			id           TEXT PRIMARY KEY,
			text         TEXT NOT NULL,
			parent_id    TEXT,
			pos_x        REAL,
			pos_y        REAL,
			pos_z        REAL,
			font_size    REAL,
			show_on_zoom INTEGER
		);
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
