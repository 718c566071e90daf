// Package error provides the structured error type used by the textkit
// foundation packages.
//
// Package: error
// Title: Structured Error Type
// Description: Errors carry a machine readable Code, a Severity, free form
//              details and a stack trace captured at creation time.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Code based errors.Is support
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("text must not be blank").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithOperation("stringx.ToSentenceCase")
//
//	if errors.Is(err, mdwerror.ErrInvalidInput) {
//		// caller supplied bad input
//	}
//
// Module level constructors live in the sibling package
// foundation/core/errors and should be preferred inside the utils packages.
package error
