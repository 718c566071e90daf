// File: validationx.go
// Title: Precondition Guards
// Description: Implements the string guard every text operation runs
//              before it transforms its input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-18 v0.2.0: Reduced to the string guard used by the text utilities

package validationx

import (
	"strings"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// IsValidString returns true when every value is non-empty and contains
// something other than whitespace. Calling it without values returns true.
func IsValidString(values ...string) bool {
	for _, v := range values {
		if v == "" || strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// RequireValidString returns an INVALID_INPUT error tagged with module and
// operation when IsValidString rejects the values.
func RequireValidString(module, operation string, values ...string) error {
	for _, v := range values {
		if !IsValidString(v) {
			return mdwerrors.InvalidInput(module, operation, v, "non-blank string")
		}
	}
	return nil
}
