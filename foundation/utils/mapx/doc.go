// Package mapx provides the small set of generic map helpers shared by
// the configuration and logging packages.
//
// Package: mapx
// Title: Map Utilities
// Description: SortedKeys gives deterministic iteration order for output
//              and validation. MergeNested layers parsed configuration
//              over defaults section by section.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-18 v0.2.0: Reduced to the helpers used by config and log
//
// Usage:
//
//	defaults := map[string]interface{}{"format": map[string]interface{}{"precision": 2, "pad_width": 2}}
//	parsed := map[string]interface{}{"format": map[string]interface{}{"precision": 4}}
//	merged := mapx.MergeNested(defaults, parsed)
//	// format.precision = 4, format.pad_width = 2
//
//	for _, k := range mapx.SortedKeys(fields) {
//		fmt.Println(k, fields[k])
//	}
package mapx
