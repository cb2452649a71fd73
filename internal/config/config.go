// Package config loads the server configuration file. A missing file yields
// the compiled-in defaults so the binary runs out of a checkout unconfigured.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	Addr         string `yaml:"addr"`
	Brand        string `yaml:"brand"`
	TemplatesDir string `yaml:"templatesDir"`
	StaticDir    string `yaml:"staticDir"`
	ContentDir   string `yaml:"contentDir"`
	// BrandsFile optionally overlays brand profiles onto the built-in table.
	BrandsFile string `yaml:"brandsFile"`
	Dev        bool   `yaml:"dev"`
	Minify     bool   `yaml:"minify"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:         ":8888",
		Brand:        "bettergov",
		TemplatesDir: "templates",
		StaticDir:    "static",
		ContentDir:   "content",
	}
}

// Load reads path, falling back to defaults when the file does not exist.
// Unset fields keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8888"
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	if cfg.Brand == "" {
		cfg.Brand = "bettergov"
	}
	return cfg, nil
}
