package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds the verifier and preview settings.
type Config struct {
	// Paths
	FixtureFile string `json:"fixture_file"` // empty = built-in tables
	Background  string `json:"background"`   // optional preview background image
	OutputDir   string `json:"output_dir"`

	// Verification
	Tolerance float64 `json:"tolerance"`
	Table     string  `json:"table"` // run only this table

	// Preview settings
	Previews    bool `json:"previews"`
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`
	Workers     int  `json:"workers"`

	dir string // directory of the loaded file, for relative paths
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Tolerance < 0 {
		return Config{}, fmt.Errorf("config: %s: tolerance must not be negative", path)
	}

	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.FixtureFile != "" {
		c.FixtureFile = flags.FixtureFile
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Table != "" {
		c.Table = flags.Table
	}
	if flags.Tolerance > 0 {
		c.Tolerance = flags.Tolerance
	}
	if flags.Previews {
		c.Previews = true
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Paths from the file are relative to the file; flags are left as given
	if c.dir != "" {
		if flags.FixtureFile == "" {
			c.FixtureFile = c.relative(c.FixtureFile)
		}
		if flags.Background == "" {
			c.Background = c.relative(c.Background)
		}
		if flags.OutputDir == "" {
			c.OutputDir = c.relative(c.OutputDir)
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}

	if c.Tolerance <= 0 {
		c.Tolerance = 1e-4
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) relative(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	FixtureFile string
	Background  string
	OutputDir   string
	Table       string
	Tolerance   float64
	Previews    bool
	Size        int
	Workers     int
}
