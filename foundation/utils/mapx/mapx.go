// File: mapx.go
// Title: Map Utilities
// Description: Ordered key listing, shallow copies and nested merging of
//              the map shapes used by configuration and log fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-18 v0.2.0: Reduced to sorted keys, clone and nested merge

package mapx

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a shallow copy of m. A nil map clones to an empty map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// MergeNested returns base overlaid with overlay. Where both hold a
// nested map[string]interface{} for the same key the two are merged
// recursively; otherwise the overlay value wins. Nested maps in the result
// are fresh copies, so writes to it never reach base or overlay.
func MergeNested(base, overlay map[string]interface{}) map[string]interface{} {
	result := CloneNested(base)
	for k, v := range overlay {
		bv, bok := result[k].(map[string]interface{})
		ov, ook := v.(map[string]interface{})
		switch {
		case bok && ook:
			result[k] = MergeNested(bv, ov)
		case ook:
			result[k] = CloneNested(ov)
		default:
			result[k] = v
		}
	}
	return result
}

// CloneNested copies m and every nested map[string]interface{} below it.
// Other values, slices included, are shared.
func CloneNested(m map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			result[k] = CloneNested(nested)
			continue
		}
		result[k] = v
	}
	return result
}
