package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	derrors "github.com/Uranus-Queen/fuwari/internal/errors"
	"github.com/Uranus-Queen/fuwari/internal/logfields"
)

// Config represents the application configuration
type Config struct {
	Site        SiteConfig    `yaml:"site"`
	Posts       PostsConfig   `yaml:"posts"`
	Output      OutputConfig  `yaml:"output"`
	StaticPages []StaticPage  `yaml:"static_pages"`
	Metrics     MetricsConfig `yaml:"metrics,omitempty"`
}

// SiteConfig holds the absolute origin every relative path is appended to.
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`
}

// PostsConfig describes where posts live and how they map to URLs.
type PostsConfig struct {
	Directory        string   `yaml:"directory"`
	Patterns         []string `yaml:"patterns,omitempty"`
	RoutePrefix      string   `yaml:"route_prefix,omitempty"`
	ChangeFreq       string   `yaml:"changefreq,omitempty"`
	Priority         string   `yaml:"priority,omitempty"`
	NormalizeUnicode bool     `yaml:"normalize_unicode,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory   string `yaml:"directory"`
	SitemapFile string `yaml:"sitemap_file,omitempty"`
	IndexFile   string `yaml:"index_file,omitempty"`
}

// StaticPage is a fixed route listed ahead of the posts.
type StaticPage struct {
	Path       string `yaml:"path"`
	ChangeFreq string `yaml:"changefreq,omitempty"`
	Priority   string `yaml:"priority,omitempty"`
}

// MetricsConfig enables the Prometheus textfile output.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads configuration from configPath. A missing file is not an error:
// the built-in defaults are returned so the generator runs with no setup.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Configuration file not found, using defaults", logfields.Path(configPath))
			return Default(), nil
		}
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("read: %w", err))
	}

	cfg, err := Parse(data)
	if err != nil {
		if _, ok := derrors.As(err); ok {
			return nil, err
		}
		return nil, derrors.ConfigInvalid(configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML (after ${VAR} expansion), applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes the example configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.New(derrors.CategoryConfig, derrors.SeverityFatal,
			"configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityFatal, "failed to write config file").
			WithContext("path", configPath)
	}
	return nil
}
