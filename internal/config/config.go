package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"fastakit/internal/fasta"
)

const (
	configDirName = "fastakit"
	defaultConfig = ".config"
)

var configFiles = []string{
	"config.yaml",
	"config.yml",
}

// Config is the on-disk configuration. Unset fields take their `default`
// tag; command-line flags override both.
type Config struct {
	SequenceType   string `yaml:"sequence_type" default:"protein"`
	Keep           string `yaml:"keep"`
	Format         string `yaml:"format" default:"fasta"`
	Wrap           int    `yaml:"wrap"`
	LineEnding     string `yaml:"line_ending" default:"\n"`
	CarryComments  bool   `yaml:"carry_comments"`
	RequireValid   bool   `yaml:"require_valid"`
	IncludeInvalid bool   `yaml:"include_invalid"`
	Quiet          bool   `yaml:"quiet"`

	LogLevel  string `yaml:"log_level" default:"info"`
	LogFormat string `yaml:"log_format" default:"text"`

	Listen       string `yaml:"listen" default:":8750"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" default:"33554432"`
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	defaults.MustSet(cfg)
	return cfg
}

// ParseOptions validates the parse settings and turns them into fasta
// options.
func (c *Config) ParseOptions() (fasta.Options, error) {
	t, err := fasta.ParseSequenceType(c.SequenceType)
	if err != nil {
		return fasta.Options{}, err
	}
	if c.Wrap < 0 {
		return fasta.Options{}, fmt.Errorf("wrap must be >= 0, got %d", c.Wrap)
	}
	return fasta.Options{Type: t, Keep: c.Keep, CarryComments: c.CarryComments}, nil
}

// getConfigPath returns $XDG_CONFIG_HOME/fastakit, falling back to
// ~/.config/fastakit.
func getConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(home, defaultConfig)
	}
	return filepath.Join(configHome, configDirName), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return cfg, nil
}

// Load reads path when given (it must exist), otherwise the first config
// file found in the user config directory. Without any file the defaults
// are returned.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	dir, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}
	for _, name := range configFiles {
		cfg, err := loadFile(filepath.Join(dir, name))
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return Default(), nil
}
