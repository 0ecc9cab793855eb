package tables

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the tolerances used during table reconstruction. The
// defaults are tuned for layout units of roughly typographic points; sources
// with much coarser geometry may need a larger boundary tolerance.
type Config struct {
	// BoundaryTolerance is the maximum distance between two boundary
	// coordinates for them to be deduplicated into one canonical grid line.
	BoundaryTolerance float64 `yaml:"boundary_tolerance"`

	// CoverageThreshold is the fraction of a canonical interval's width that
	// a cell must cover for the interval to count toward the cell's span.
	// Tolerates ruling-line jitter.
	CoverageThreshold float64 `yaml:"coverage_threshold"`

	// SubsumeThreshold is the fraction of an element's own area that must be
	// covered by a table's bounding box for the element to be removed and
	// replaced by the table during splicing.
	SubsumeThreshold float64 `yaml:"subsume_threshold"`
}

// DefaultConfig returns the default reconstruction configuration
func DefaultConfig() Config {
	return Config{
		BoundaryTolerance: 2.0,
		CoverageThreshold: 0.5,
		SubsumeThreshold:  0.5,
	}
}

// Validate checks that the configuration values are usable
func (c Config) Validate() error {
	if c.BoundaryTolerance < 0 {
		return fmt.Errorf("tables: boundary_tolerance must be >= 0, got %v", c.BoundaryTolerance)
	}
	if c.CoverageThreshold <= 0 || c.CoverageThreshold >= 1 {
		return fmt.Errorf("tables: coverage_threshold must be in (0, 1), got %v", c.CoverageThreshold)
	}
	if c.SubsumeThreshold <= 0 || c.SubsumeThreshold >= 1 {
		return fmt.Errorf("tables: subsume_threshold must be in (0, 1), got %v", c.SubsumeThreshold)
	}
	return nil
}

// LoadConfig reads YAML threshold overrides from a file, applied on top of
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("tables: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("tables: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
