// Package config loads cardgrid's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
	"github.com/MichaelCho6556/cardgrid/pkg/virtualgrid"
)

// Config is the application configuration. Zero values in the file fall
// back to defaults, so a partial file is fine.
type Config struct {
	CardWidth    int               `yaml:"card_width"`
	CardHeight   int               `yaml:"card_height"`
	Gap          int               `yaml:"gap"`
	OverscanRows int               `yaml:"overscan_rows"`
	CatalogPath  string            `yaml:"catalog_path"`
	Sort         catalog.SortOrder `yaml:"sort"`
	Debug        bool              `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		CardWidth:    28,
		CardHeight:   7,
		Gap:          1,
		OverscanRows: virtualgrid.DefaultOverscanRows,
		Sort:         catalog.SortByRating,
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return fmt.Errorf("card size must be positive, got %dx%d", c.CardWidth, c.CardHeight)
	}
	if c.Gap < 0 {
		return fmt.Errorf("gap must be non-negative, got %d", c.Gap)
	}
	if c.OverscanRows < 0 {
		return fmt.Errorf("overscan_rows must be non-negative, got %d", c.OverscanRows)
	}
	switch c.Sort {
	case catalog.SortByRating, catalog.SortByTitle, catalog.SortByYear:
	default:
		return fmt.Errorf("unknown sort order %q", c.Sort)
	}
	return nil
}

// Geometry returns the card geometry in the engine's terms.
func (c *Config) Geometry() virtualgrid.Geometry {
	return virtualgrid.Geometry{
		ItemWidth:  c.CardWidth,
		ItemHeight: c.CardHeight,
		Gap:        c.Gap,
	}
}
