package mapdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotFile is the consolidated document the frontend loads wholesale.
const SnapshotFile = "map_data.json"

// LabelsFile is the merged label document.
const LabelsFile = "labels.json"

// WriteSnapshot serializes the full snapshot to dir/map_data.json. A write
// failure is fatal to the run; a partial file is not cleaned up.
func (d *MapData) WriteSnapshot(dir string) error {
	return writeJSON(filepath.Join(dir, SnapshotFile), d)
}

// WriteLabels serializes a merged label map to dir/labels.json.
func WriteLabels(dir string, labels map[string]*Label) error {
	return writeJSON(filepath.Join(dir, LabelsFile), labels)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
