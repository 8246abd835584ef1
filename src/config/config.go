package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the asset tooling configuration
type Config struct {
	// Root is the repository root. Empty means: walk up from the working
	// directory to go.mod.
	Root      string `yaml:"root" env:"RBV_ROOT"`
	AssetsDir string `yaml:"assets_dir" env:"RBV_ASSETS_DIR"`
	Logo      string `yaml:"logo" env:"RBV_LOGO"`
}

// Default returns the layout of the studio site repository
func Default() *Config {
	return &Config{
		AssetsDir: "assets",
		Logo:      "logo.png",
	}
}

// Load reads the configuration file, then applies .env and environment overrides.
// A missing file is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working dir: %w", err)
		}
		cfg.Root = FindRoot(wd)
	}

	return cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.AssetsDir == "" {
		return fmt.Errorf("assets_dir is required")
	}
	if c.Logo == "" {
		return fmt.Errorf("logo is required")
	}
	return nil
}

// AssetsPath returns the assets directory under the repository root
func (c *Config) AssetsPath() string {
	return c.resolve(c.AssetsDir)
}

// DefaultLogoPath returns the favicon source used when no --src is given
func (c *Config) DefaultLogoPath() string {
	if filepath.IsAbs(c.Logo) {
		return c.Logo
	}
	return filepath.Join(c.AssetsPath(), c.Logo)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// FindRoot walks upward from start to the directory holding go.mod.
// If none is found, start itself is returned.
func FindRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
