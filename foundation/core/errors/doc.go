// Package errors provides the standard error constructors for the textkit
// foundation packages.
//
// Package: errors
// Title: Standard Error Handling API for textkit Foundation
// Description: Builds *mdwerror.Error values tagged with the module and
//              operation that raised them, so callers can match on the
//              code and tooling can group failures by module.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-18 v0.2.0: Narrowed to stringx, mathx, timex, validationx and config
//
// The utils packages never call fmt.Errorf or errors.New directly. A guard
// failure is reported as
//
//	return "", errors.InvalidInput(errors.ModuleStringx, "to_sentence_case", text, "non-blank text")
//
// and callers test for it with
//
//	errors.IsInvalidInput(err)
//	stderrors.Is(err, mdwerror.ErrInvalidInput)
//
// Every built error carries the details "module" and "operation", read
// back with ExtractModule and ExtractOperation.
package errors
