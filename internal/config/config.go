// Package config loads the toolkit configuration from a YAML file with
// environment-variable overrides and validated defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits a value.
const (
	DefaultVaultPath           = "~/Documents/cognet"
	DefaultMetaDir             = "02-Notes/meta"
	DefaultMinThemeSize        = 3
	DefaultSimilarityThreshold = 0.3
	DefaultMaxFeatures         = 1000
	DefaultMinLinkSimilarity   = 0.3
	DefaultMaxSuggestions      = 5
	DefaultRecentDays          = 7
)

// DefaultSourceDirs are the vault subdirectories scanned for notes.
var DefaultSourceDirs = []string{"02-Notes", "03-Projects"}

// Clustering configures the theme-clustering pipeline.
type Clustering struct {
	MinThemeSize        int      `yaml:"min_theme_size"`
	SimilarityThreshold float64  `yaml:"similarity_threshold"`
	MaxFeatures         int      `yaml:"max_features"`
	StopWords           []string `yaml:"stop_words,omitempty"`
}

// Linking configures the link-audit suggestions.
type Linking struct {
	MinSimilarity  float64 `yaml:"min_similarity"`
	MaxSuggestions int     `yaml:"max_suggestions"`
}

// Config is the root configuration.
type Config struct {
	Vault      string     `yaml:"vault"`
	SourceDirs []string   `yaml:"source_dirs"`
	MetaDir    string     `yaml:"meta_dir"`
	RecentDays int        `yaml:"recent_days"`
	Clustering Clustering `yaml:"clustering"`
	Linking    Linking    `yaml:"linking"`
}

// VaultPath returns the vault path, preferring the COGNET_VAULT env var.
func (c *Config) VaultPath() string {
	if env := os.Getenv("COGNET_VAULT"); env != "" {
		return expandHome(env)
	}
	return expandHome(c.Vault)
}

// Roots returns the absolute source directories to scan.
func (c *Config) Roots() []string {
	vault := c.VaultPath()
	roots := make([]string, 0, len(c.SourceDirs))
	for _, dir := range c.SourceDirs {
		roots = append(roots, filepath.Join(vault, dir))
	}
	return roots
}

// MetaPath returns the absolute directory reports are written to.
func (c *Config) MetaPath() string {
	return filepath.Join(c.VaultPath(), c.MetaDir)
}

// Validate checks the configured clustering and linking parameters.
func (c *Config) Validate() error {
	if c.Clustering.MinThemeSize < 2 {
		return fmt.Errorf("clustering.min_theme_size: must be at least 2, got %d", c.Clustering.MinThemeSize)
	}
	if t := c.Clustering.SimilarityThreshold; t <= 0 || t >= 1 {
		return fmt.Errorf("clustering.similarity_threshold: must be in (0, 1), got %g", t)
	}
	if c.Clustering.MaxFeatures <= 0 {
		return fmt.Errorf("clustering.max_features: must be positive, got %d", c.Clustering.MaxFeatures)
	}
	if t := c.Linking.MinSimilarity; t <= 0 || t > 1 {
		return fmt.Errorf("linking.min_similarity: must be in (0, 1], got %g", t)
	}
	return nil
}

// Load reads a config from the given path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./cognet.yaml first, then ~/.config/cognet/cognet.yaml.
// If neither exists, defaults are returned without writing anything.
func LoadDefault() (*Config, string, error) {
	cwdPath := "cognet.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return defaultConfig(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cognet", "cognet.yaml"), nil
}

func defaultConfig() *Config {
	cfg := &Config{Vault: DefaultVaultPath}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Vault == "" {
		cfg.Vault = DefaultVaultPath
	}
	if len(cfg.SourceDirs) == 0 {
		cfg.SourceDirs = append([]string(nil), DefaultSourceDirs...)
	}
	if cfg.MetaDir == "" {
		cfg.MetaDir = DefaultMetaDir
	}
	if cfg.RecentDays == 0 {
		cfg.RecentDays = DefaultRecentDays
	}
	if cfg.Clustering.MinThemeSize == 0 {
		cfg.Clustering.MinThemeSize = DefaultMinThemeSize
	}
	if cfg.Clustering.SimilarityThreshold == 0 {
		cfg.Clustering.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if cfg.Clustering.MaxFeatures == 0 {
		cfg.Clustering.MaxFeatures = DefaultMaxFeatures
	}
	if cfg.Linking.MinSimilarity == 0 {
		cfg.Linking.MinSimilarity = DefaultMinLinkSimilarity
	}
	if cfg.Linking.MaxSuggestions == 0 {
		cfg.Linking.MaxSuggestions = DefaultMaxSuggestions
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
