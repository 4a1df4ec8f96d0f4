package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"frontier-mapgen/internal/config"
	"frontier-mapgen/internal/db"
	"frontier-mapgen/internal/logger"
	"frontier-mapgen/internal/mapdata"
	"frontier-mapgen/internal/worldapi"
)

var version = "dev"

func main() {
	fetch := flag.Bool("fetch", false, "refresh the solar system listing from the world API before transforming")
	format := flag.String("format", "both", "output format: json, sqlite or both")
	dataDir := flag.String("data", "", "directory containing the source JSON files (overrides env/config)")
	outDir := flag.String("out", "", "output directory (overrides env/config)")
	flag.Parse()

	logger.Banner(version)

	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *format != "json" && *format != "sqlite" && *format != "both" {
		logger.Error("Args", fmt.Sprintf("Unknown format %q (want json, sqlite or both)", *format))
		os.Exit(1)
	}

	if *fetch {
		logger.Info("Fetch", "Fetching solar systems from the world API...")
		client := worldapi.NewClient(cfg.APIBaseURL, cfg.PageLimit, cfg.PageDelay)
		systems, err := client.FetchSolarSystems(context.Background())
		if err != nil {
			logger.Error("Fetch", fmt.Sprintf("Fetch failed: %v", err))
			os.Exit(1)
		}
		if err := worldapi.SaveSystems(cfg.DataDir, systems); err != nil {
			logger.Error("Fetch", fmt.Sprintf("Save failed: %v", err))
			os.Exit(1)
		}
		logger.Success("Fetch", fmt.Sprintf("Saved %d systems", len(systems)))
	}

	logger.Info("Load", fmt.Sprintf("Loading source files from %s...", cfg.DataDir))
	data, err := mapdata.Load(cfg.DataDir)
	if err != nil {
		logger.Error("Load", fmt.Sprintf("Load failed: %v", err))
		os.Exit(1)
	}

	logger.Info("Transform", "Deriving display positions and stargates...")
	data.Transform()
	data.ApplyHiddenRegions(cfg.HiddenRegions)
	labels := data.MergeLabels()

	logger.Section("Derived statistics")
	logger.Stats("Stargates", len(data.Stargates))
	logger.Stats("Merged labels", len(labels))

	if *format == "json" || *format == "both" {
		if err := data.WriteSnapshot(cfg.OutputDir); err != nil {
			logger.Error("Write", fmt.Sprintf("Snapshot failed: %v", err))
			os.Exit(1)
		}
		if err := mapdata.WriteLabels(cfg.OutputDir, labels); err != nil {
			logger.Error("Write", fmt.Sprintf("Labels failed: %v", err))
			os.Exit(1)
		}
		logger.Success("Write", fmt.Sprintf("Wrote %s and %s", mapdata.SnapshotFile, mapdata.LabelsFile))
	}

	if *format == "sqlite" || *format == "both" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			logger.Error("DB", fmt.Sprintf("Output dir: %v", err))
			os.Exit(1)
		}
		path := filepath.Join(cfg.OutputDir, "map_data.db")
		database, err := db.Open(path)
		if err != nil {
			logger.Error("DB", fmt.Sprintf("Open failed: %v", err))
			os.Exit(1)
		}
		if err := database.WriteMapData(data, labels); err != nil {
			database.Close()
			logger.Error("DB", fmt.Sprintf("Export failed: %v", err))
			os.Exit(1)
		}
		database.Close()

		logger.Section("Database verification")
		if err := db.Verify(path); err != nil {
			logger.Error("DB", fmt.Sprintf("Verification failed: %v", err))
			os.Exit(1)
		}
		logger.Success("DB", fmt.Sprintf("Wrote %s", path))
	}

	logger.Success("Done", "Map data build complete")
}
