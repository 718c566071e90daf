// Package timex provides the clock capability and date stamps for the
// textkit foundation.
//
// Package: timex
// Title: Clock and Date Stamps
// Description: Clock abstracts the process clock so that time dependent
//              helpers can be tested with fixed instants. DateStamp renders
//              an instant as a compact digit string.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-18 v0.2.0: Reduced to Clock, DateStamp and ParseGranularity
//
// # Clock
//
// SystemClock reads the wall clock for Now and derives Nanotime from the
// monotonic clock, anchored at the wall time of process start. FixedClock
// always returns the same readings:
//
//	clock := timex.FixedClock(time.Date(2024, 3, 9, 15, 4, 5, 0, time.Local), 42)
//
// # Date stamps
//
// DateStamp concatenates zero padded fields up to the selected
// Granularity:
//
//	UpToMonth        yyyyMM             202403
//	UpToDate         yyyyMMdd           20240309
//	UpToHour         yyyyMMddhh         2024030903
//	UpToMinute       yyyyMMddhhmm       202403090304
//	UpToSecond       yyyyMMddhhmmss     20240309030405
//	UpToMillisecond  yyyyMMddhhmmssSSS  20240309030405678
//
// The hour is the 12-hour field 00-11 without AM/PM marker, so stamps
// taken at 03:00 and 15:00 of the same day are equal. Fields are taken from
// the instant as returned by the clock; SystemClock returns local time.
package timex
