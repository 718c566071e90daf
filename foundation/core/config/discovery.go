// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the first configuration file in a list of directories
//              and loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: User config directory, optional discovery

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search, in order
	Filenames  []string               // Base names without extension
	Extensions []string               // Extensions to try, in order
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Values used when nothing sets them
	Required   bool                   // Fail when no file is found
}

// DefaultDiscoveryOptions searches the working directory and the user
// config directory for app.toml, app.yaml and app.yml.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the first file FindConfigFile reports. Without a file it
// returns an empty configuration, or a NOT_FOUND error when Required.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix, Defaults: options.Defaults}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(loadOptions), nil
	}
	return LoadWithOptions(path, loadOptions)
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, p := range candidates {
		if filex.IsFile(p) {
			return p, nil
		}
	}
	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
