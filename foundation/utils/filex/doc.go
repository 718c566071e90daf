// Package filex provides the file helpers used to locate and read
// configuration and piped input.
//
// Package: filex
// Title: File Utilities
// Description: Exists and IsFile probe candidate paths. ReadAllLimited and
//              ReadFileLimited read whole inputs but refuse to grow past a
//              byte limit, reporting ErrTooLarge instead.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to existence checks and capped reads
//
// Usage:
//
//	if filex.IsFile("textx.toml") {
//		data, err := filex.ReadFileLimited("textx.toml", 1<<20)
//		if errors.Is(err, filex.ErrTooLarge) {
//			// refuse oversized config
//		}
//	}
//
//	text, err := filex.ReadAllLimited(os.Stdin, 16<<20)
package filex
