package db

import (
	"database/sql"
	"fmt"

	"frontier-mapgen/internal/mapdata"
)

// WriteMapData writes the full snapshot across the six tables in a single
// transaction. Existing rows are replaced, so re-exporting over an old file
// is safe.
func (d *DB) WriteMapData(data *mapdata.MapData, labels map[string]*mapdata.Label) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	if err := insertRegions(tx, data.Regions); err != nil {
		return err
	}
	if err := insertConstellations(tx, data.Constellations); err != nil {
		return err
	}
	if err := insertSystems(tx, data.SolarSystems); err != nil {
		return err
	}
	if err := insertStargates(tx, data.Stargates); err != nil {
		return err
	}
	if err := insertLabels(tx, labels); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// vec splits an optional 3-vector into nullable column values.
func vec(v []float64) (x, y, z any) {
	if len(v) < 3 {
		return nil, nil, nil
	}
	return v[0], v[1], v[2]
}

func pos(p *mapdata.Position) (x, y, z any) {
	if p == nil {
		return nil, nil, nil
	}
	return p.X, p.Y, p.Z
}

// nullStr maps "" to NULL for optional TEXT columns.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func insertRegions(tx *sql.Tx, regions map[string]*mapdata.Region) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO regions (id, name, center_x, center_y, center_z, hidden, nebula)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare regions: %w", err)
	}
	defer stmt.Close()

	for id, r := range regions {
		cx, cy, cz := vec(r.Center)
		var nebula any
		if len(r.Nebula) > 0 {
			nebula = string(r.Nebula)
		}
		if _, err := stmt.Exec(id, r.Name, cx, cy, cz, r.Hidden, nebula); err != nil {
			return fmt.Errorf("insert region %s: %w", id, err)
		}
	}
	return nil
}

func insertConstellations(tx *sql.Tx, constellations map[string]*mapdata.Constellation) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO constellations (id, name, region_id, center_x, center_y, center_z, lines, hidden)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare constellations: %w", err)
	}
	defer stmt.Close()

	for id, c := range constellations {
		cx, cy, cz := vec(c.Center)
		var lines any
		if len(c.Lines) > 0 {
			lines = string(c.Lines)
		}
		if _, err := stmt.Exec(id, c.Name, nullStr(string(c.RegionID)), cx, cy, cz, lines, c.Hidden); err != nil {
			return fmt.Errorf("insert constellation %s: %w", id, err)
		}
	}
	return nil
}

func insertSystems(tx *sql.Tx, systems map[string]*mapdata.SolarSystem) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO systems (
			id, name, constellation_id, region_id,
			center_x, center_y, center_z, pos_x, pos_y, pos_z,
			security_class, security_status, star_class, hidden
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare systems: %w", err)
	}
	defer stmt.Close()

	for id, s := range systems {
		cx, cy, cz := vec(s.Center)
		px, py, pz := pos(s.Position)
		if _, err := stmt.Exec(
			id, s.Name, nullStr(string(s.ConstellationID)), nullStr(string(s.RegionID)),
			cx, cy, cz, px, py, pz,
			nullStr(s.SecurityClass), s.SecurityStatus, nullStr(s.StarClass), s.Hidden,
		); err != nil {
			return fmt.Errorf("insert system %s: %w", id, err)
		}
	}
	return nil
}

func insertStargates(tx *sql.Tx, stargates map[string]*mapdata.Stargate) error {
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stargates (id, name, source_system_id, destination_system_id)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare stargates: %w", err)
	}
	defer stmt.Close()

	for _, g := range stargates {
		if _, err := stmt.Exec(g.ID, g.Name, string(g.SourceSystemID), string(g.DestinationSystemID)); err != nil {
			return fmt.Errorf("insert stargate %d: %w", g.ID, err)
		}
	}
	return nil
}

// insertLabels splits the merged label map: region labels keep their
// placement extras in region_labels, everything else goes to labels.
func insertLabels(tx *sql.Tx, labels map[string]*mapdata.Label) error {
	plain, err := tx.Prepare(`INSERT OR REPLACE INTO labels (id, text, type) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare labels: %w", err)
	}
	defer plain.Close()

	region, err := tx.Prepare(`
		INSERT OR REPLACE INTO region_labels (id, text, parent_id, pos_x, pos_y, pos_z, font_size, show_on_zoom)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare region_labels: %w", err)
	}
	defer region.Close()

	for id, l := range labels {
		if l.Type == "region" {
			px, py, pz := pos(l.Position)
			var fontSize any
			if l.FontSize != 0 {
				fontSize = l.FontSize
			}
			var showOnZoom any
			if l.ShowOnZoom != nil {
				showOnZoom = *l.ShowOnZoom
			}
			if _, err := region.Exec(id, l.Text, nullStr(string(l.ParentID)), px, py, pz, fontSize, showOnZoom); err != nil {
				return fmt.Errorf("insert region label %s: %w", id, err)
			}
			continue
		}
		if _, err := plain.Exec(id, l.Text, l.Type); err != nil {
			return fmt.Errorf("insert label %s: %w", id, err)
		}
	}
	return nil
}
