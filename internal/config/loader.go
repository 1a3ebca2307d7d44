package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default catalog file name.
const DefaultConfigFile = ".symposcan"

// ErrConfigNotFound is returned when the catalog file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadCatalogFile loads a meeting catalog from a YAML file. If the
// file does not exist, it returns ErrConfigNotFound; callers decide
// whether that matters based on whether the path was explicit.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}

	if catalog.Editions == nil {
		catalog.Editions = make(map[string]Edition)
	}

	return &catalog, nil
}

// FindConfigFile searches for the catalog file:
// 1. If configPath is specified, use it directly
// 2. Look for .symposcan in the current directory
// 3. Look for .symposcan in the user's home directory
//
// Returns the path if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
