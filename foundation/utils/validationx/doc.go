// Package validationx provides the precondition guards shared by the
// textkit utilities.
//
// Package: validationx
// Title: Input Guards
// Description: A string is valid when it is non-empty and not made of
//              whitespace only. Operations call RequireValidString first
//              and return its error unchanged.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation utilities
// - 2026-10-18 v0.2.0: Reduced to the string guard
package validationx
