// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment variable overrides, file discovery and rule based
//              validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Narrowed to command line configuration

/*
Package config loads configuration for the textkit command line tool.

Files are TOML (github.com/BurntSushi/toml) or YAML (gopkg.in/yaml.v3); the
format follows the file extension unless LoadOptions.Format says otherwise.

	[format]
	line_separator = "crlf"
	precision = 3

Values are read with dot paths:

	cfg, err := config.LoadWithOptions("textx.toml", config.LoadOptions{EnvPrefix: "TEXTX"})
	precision := cfg.GetInt("format.precision", 2)

With the prefix TEXTX the environment variable TEXTX_FORMAT_PRECISION
overrides format.precision. Environment values always win over file values,
file values win over LoadOptions.Defaults.

Discover looks for the first existing file among a list of candidates and
falls back to an empty configuration when the file is optional. Validate
reports every key that breaks its ValidationRule.
*/
package config
