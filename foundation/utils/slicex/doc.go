// Package slicex provides generic slice helpers.
//
// Package: slicex
// Title: Slice Utilities
// Description: Trailing trims for the line and word lists built by the
//              stringx tokenizer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-18 v0.2.0: Reduced to TrimRight and TrimRightFunc
//
// Usage:
//
//	lines := slicex.TrimRight(strings.Split("a\nb\n\n", "\n"), "")
//	// lines = ["a", "b"]
package slicex
