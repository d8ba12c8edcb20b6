package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".readscore"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// FileConfig holds per-file configuration for a single text file.
// This allows pinning a metric or output format per document, so a book
// manuscript can always be scored with SMOG while everything else defaults
// to "all".
type FileConfig struct {
	// Index is the metric token to compute for this file: "ARI", "FK",
	// "SMOG", "CL", or "all". If empty, the global setting applies.
	Index string `yaml:"index,omitempty"`

	// Format overrides the report output format for this file.
	// Valid values: "simple", "json", "markdown". If empty, the global
	// setting applies.
	Format string `yaml:"format,omitempty"`
}

// File represents the structure of the .readscore configuration file.
type File struct {
	// Files maps text file paths to their file-specific configurations.
	// Keys are paths as passed on the command line.
	Files map[string]FileConfig `yaml:"files,omitempty"`

	// Defaults contains the default file configuration applied to all
	// files unless overridden in the file-specific configuration.
	Defaults FileConfig `yaml:"defaults,omitempty"`
}

// GetFileConfig returns the configuration for a specific text file path.
// It merges the file-specific configuration with defaults.
func (cf *File) GetFileConfig(path string) FileConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with file-specific configuration if present
	if fileConfig, ok := cf.Files[path]; ok {
		if fileConfig.Index != "" {
			result.Index = fileConfig.Index
		}
		if fileConfig.Format != "" {
			result.Format = fileConfig.Format
		}
	}

	return result
}

// LoadConfigFile loads file configurations from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	// Initialize Files map if nil
	if cf.Files == nil {
		cf.Files = make(map[string]FileConfig)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .readscore in the current directory
// 3. Look for .readscore in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
