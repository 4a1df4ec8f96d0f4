package mapdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"frontier-mapgen/internal/logger"
)

// Source file names, all flat JSON objects keyed by string ids.
const (
	systemsFile             = "stellar_systems.json"
	regionsFile             = "stellar_regions.json"
	constellationsFile      = "stellar_constellations.json"
	systemLabelsFile        = "system_labels.json"
	constellationLabelsFile = "constellation_labels.json"
	stellarLabelsFile       = "stellar_labels.json"
)

// Load reads all six source documents from dir. The files are independent,
// so they load concurrently into distinct destinations. Any missing or
// malformed file fails the whole load; nothing downstream runs on a partial
// snapshot.
func Load(dir string) (*MapData, error) {
	d := &MapData{}

	var g errgroup.Group
	g.Go(func() error { return readJSON(dir, systemsFile, &d.SolarSystems) })
	g.Go(func() error { return readJSON(dir, regionsFile, &d.Regions) })
	g.Go(func() error { return readJSON(dir, constellationsFile, &d.Constellations) })
	g.Go(func() error { return readJSON(dir, systemLabelsFile, &d.SystemLabels) })
	g.Go(func() error { return readJSON(dir, constellationLabelsFile, &d.ConstellationLabels) })
	g.Go(func() error { return readJSON(dir, stellarLabelsFile, &d.StellarLabels) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Section("Source statistics")
	logger.Stats("Regions", len(d.Regions))
	logger.Stats("Constellations", len(d.Constellations))
	logger.Stats("Systems", len(d.SolarSystems))
	logger.Stats("Labels", len(d.SystemLabels)+len(d.ConstellationLabels)+len(d.StellarLabels))
	return d, nil
}

// readJSON reads one source file whole and unmarshals it into dst.
func readJSON(dir, name string, dst any) error {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
