package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults that can be set once in a TOML file instead
// of repeated as flags.
type Config struct {
	// Format is the default output format: "text" or "json".
	Format string

	// Database is the default archive path for verify, trace, and export.
	Database string
}

// DefaultConfig returns the built-in defaults used when no config file
// is given.
func DefaultConfig() Config {
	return Config{
		Format:   "text",
		Database: "mary.db",
	}
}

// fileConfig is the maryctl config.toml key mapping.
type fileConfig struct {
	Format   string `toml:"format"`
	Database string `toml:"database"`
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("database") {
		cfg.Database = strings.TrimSpace(raw.Database)
	}
	return cfg, nil
}
