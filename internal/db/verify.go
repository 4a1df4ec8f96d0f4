package db

import (
	"database/sql"
	"fmt"

	"frontier-mapgen/internal/logger"
)

var expectedTables = []string{
	"regions", "constellations", "systems", "stargates", "labels", "region_labels",
}

// Verify re-opens an exported database file and checks that every expected
// table exists and holds at least one row.
func Verify(path string) error {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer sqlDB.Close()

	for _, table := range expectedTables {
		var name string
		err := sqlDB.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("missing table %s", table)
		}
		if err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}

		var count int
		if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		if count == 0 {
			return fmt.Errorf("no data in table %s", table)
		}
		logger.Stats(table, count)
	}
	return nil
}
