// Package config loads converter defaults from YAML files.
// A config file supplies the options a user would otherwise repeat on
// every invocation: stylesheet, highlight theme, standalone mode.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxStyleLength = 100 // Stylesheet or highlight theme name
	MaxTitleLength = 200 // Document title
)

// Config holds converter defaults loaded from a YAML file.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	CSS       CSSConfig       `yaml:"css"`
	Highlight HighlightConfig `yaml:"highlight"`
	Document  DocumentConfig  `yaml:"document"`
}

// OutputConfig defines output shape options.
type OutputConfig struct {
	Standalone bool `yaml:"standalone"` // Wrap output in a complete HTML5 document
}

// CSSConfig defines CSS styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Name of style in internal/assets/styles/ (empty = no CSS)
}

// HighlightConfig defines fenced-code highlighting options.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style name (empty = no highlighting)
}

// DocumentConfig defines standalone document options.
type DocumentConfig struct {
	Title string `yaml:"title"` // Default <title> (empty = derive from front matter)
}

// DefaultConfig returns a config with zero values, meaning fragment
// output with no stylesheet and no highlighting.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field length limits.
func (c *Config) Validate() error {
	checks := []struct {
		value string
		max   int
		field string
	}{
		{c.CSS.Style, MaxStyleLength, "css.style"},
		{c.Highlight.Style, MaxStyleLength, "highlight.style"},
		{c.Document.Title, MaxTitleLength, "document.title"},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, check.field, len(check.value), check.max)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A string containing a path separator is treated as a file path;
// anything else is resolved against the current directory and the user
// config directory. Returns an error if the file is not found (no
// silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !isFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/md2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "md2html", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
