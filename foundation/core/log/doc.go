// Package log provides structured logging for the textkit command line
// tool.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with request context, structured fields,
//              text, JSON and console formats, and a timer for operation
//              durations. Entries of the foundation error type are logged
//              with their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Narrowed to command line use
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON}).
//		WithRequestID(uuid.NewString()).
//		WithCommand("case")
//
//	timer := logger.StartTimer("case")
//	out, err := stringx.ApplyCase(text, policy)
//	if err != nil {
//		timer.StopWithError(err)
//		logger.LogError(err)
//	} else {
//		timer.Stop()
//	}
//
// The library packages never log; only the command layer does.
package log
