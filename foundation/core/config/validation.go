// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against per key rules for
//              presence, type, numeric range and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: OneOf rules, dropped struct binding and patterns

package config

import (
	"fmt"
	"strings"

	"github.com/msto63/textkit/foundation/utils/mapx"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // The key must be present
	Type     string   // "string", "int" or "bool"; empty skips the check
	Min      *int     // Lower bound for int values
	Max      *int     // Upper bound for int values
	OneOf    []string // Allowed string values, compared case insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
	// Keys lists the keys that failed, sorted
	Keys []string `json:"keys,omitempty"`
}

// Validate checks the effective values, environment overrides included,
// against rules. Keys are checked in sorted order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, key := range mapx.SortedKeys(rules) {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			result.Keys = append(result.Keys, key)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	present := c.Has(key) || c.getEnvValue(key) != ""
	if !present {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		raw := c.getValue(key)
		if env := c.getEnvValue(key); env != "" {
			raw = env
		}
		n, ok := toInt(raw)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer", key)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, *rule.Min, n)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("field '%s' must be at most %d, got %d", key, *rule.Max, n)
		}
	case "bool":
		if _, ok := c.getValue(key).(bool); !ok && c.getEnvValue(key) == "" {
			return fmt.Errorf("field '%s' must be a boolean", key)
		}
	}

	if len(rule.OneOf) > 0 {
		value := strings.ToLower(strings.TrimSpace(c.GetString(key)))
		for _, allowed := range rule.OneOf {
			if value == strings.ToLower(allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), value)
	}
	return nil
}

// IntPtr returns a pointer to n, for Min and Max
func IntPtr(n int) *int {
	return &n
}
