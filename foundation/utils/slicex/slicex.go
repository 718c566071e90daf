// File: slicex.go
// Title: Slice Utilities
// Description: Generic helpers for trimming slices produced by splitting
//              text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-18 v0.2.0: Reduced to trailing trims used by the tokenizer

package slicex

// TrimRightFunc returns s without its trailing elements for which drop
// reports true. The result shares the backing array of s.
func TrimRightFunc[T any](s []T, drop func(T) bool) []T {
	n := len(s)
	for n > 0 && drop(s[n-1]) {
		n--
	}
	return s[:n]
}

// TrimRight returns s without its trailing elements equal to v
func TrimRight[T comparable](s []T, v T) []T {
	return TrimRightFunc(s, func(e T) bool { return e == v })
}
