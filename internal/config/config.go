package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the run settings for one transform pass.
type Config struct {
	DataDir   string `json:"data_dir"`   // where the source JSON files live
	OutputDir string `json:"output_dir"` // where map_data.json / map_data.db are written

	// World API fetch settings.
	APIBaseURL string        `json:"api_base_url"`
	PageLimit  int           `json:"page_limit"`
	PageDelay  time.Duration `json:"page_delay"`

	// Region ids excluded from normal display, cascaded to descendants.
	HiddenRegions []string `json:"hidden_regions"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		OutputDir:  "public",
		APIBaseURL: "https://world-api-stillness.live.tech.evefrontier.com/v2/solarsystems",
		PageLimit:  1000,
		PageDelay:  500 * time.Millisecond,
		HiddenRegions: []string{
			"14000001", "14000002", "14000003", "14000004", "14000005",
			"12000001", "12000002", "12000003", "12000004", "12000005",
			"10000004",
		},
	}
}

// Load returns the defaults overridden from the environment. A .env file in
// the working directory is honored when present.
func Load() *Config {
	godotenv.Load()

	cfg := Default()
	if v := os.Getenv("MAPGEN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MAPGEN_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("MAPGEN_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("MAPGEN_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageLimit = n
		}
	}
	if v := os.Getenv("MAPGEN_PAGE_DELAY"); v != "" {
		if dur, err := time.ParseDuration(v); err == nil && dur >= 0 {
			cfg.PageDelay = dur
		}
	}
	if v := os.Getenv("MAPGEN_HIDDEN_REGIONS"); v != "" {
		cfg.HiddenRegions = splitList(v)
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
