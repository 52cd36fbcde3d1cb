// Package config loads and validates texlit run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avasant/go-texlit/internal/fileutil"
	"github.com/avasant/go-texlit/internal/sanscript"
	"github.com/avasant/go-texlit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrUnknownScheme   = errors.New("config: unknown scheme")
	ErrUnknownCase     = errors.New("config: unknown case kind")
	ErrBadTagName      = errors.New("config: invalid tag name")
)

// MaxTagNameLength bounds custom tag names; anything longer is a typo.
const MaxTagNameLength = 32

// Config holds all configuration for a finalization run.
type Config struct {
	Source  string        `yaml:"source"`  // scheme of the text inside tags (default: devanagari)
	Tags    []TagRow      `yaml:"tags"`    // extra tag rows appended to the default table
	Cleanup CleanupConfig `yaml:"cleanup"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
}

// TagRow declares one extra recognized tag.
type TagRow struct {
	Name   string `yaml:"name"`   // command name without the backslash
	Scheme string `yaml:"scheme"` // target scheme
	Case   string `yaml:"case"`   // "identity", "title", or "upper"
}

// CleanupConfig toggles the post-rewrite cleanup stages. The zero value
// keeps both stages on, matching the default pipeline.
type CleanupConfig struct {
	KeepComments   bool `yaml:"keepComments"`   // skip comment-environment removal
	KeepWhitespace bool `yaml:"keepWhitespace"` // skip whitespace cleaning
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = alongside input)
}

// DefaultConfig returns the neutral configuration: Devanagari source,
// no extra tags, both cleanup stages enabled.
func DefaultConfig() *Config {
	return &Config{
		Source: sanscript.Devanagari,
	}
}

// Validate checks scheme names, case kinds, and tag names.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Source != "" && !sanscript.Supported(c.Source) {
		return fmt.Errorf("%w: source %q (supported: %s)",
			ErrUnknownScheme, c.Source, strings.Join(sanscript.Schemes(), ", "))
	}

	for i, row := range c.Tags {
		if row.Name == "" || len(row.Name) > MaxTagNameLength {
			return fmt.Errorf("%w: tags[%d].name %q", ErrBadTagName, i, row.Name)
		}
		if !sanscript.Supported(row.Scheme) {
			return fmt.Errorf("%w: tags[%d].scheme %q (supported: %s)",
				ErrUnknownScheme, i, row.Scheme, strings.Join(sanscript.Schemes(), ", "))
		}
		switch row.Case {
		case "", "identity", "title", "upper":
			// valid; empty means identity
		default:
			return fmt.Errorf("%w: tags[%d].case %q (must be identity, title, or upper)",
				ErrUnknownCase, i, row.Case)
		}
	}

	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Source == "" {
		cfg.Source = sanscript.Devanagari
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/texlit/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "texlit", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
