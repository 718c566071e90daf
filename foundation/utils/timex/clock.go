// File: clock.go
// Title: Clock Capability
// Description: Defines the Clock interface through which the identifier and
//              date stamp helpers read the current instant, plus the system
//              and fixed implementations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Now/Today helpers on the process clock
// - 2026-10-18 v0.2.0: Injectable Clock with monotonic nanotime

package timex

import "time"

// Clock supplies the current instant.
type Clock interface {
	// Now returns the current wall clock time.
	Now() time.Time
	// Nanotime returns a monotonically increasing nanosecond counter.
	// Its origin is unspecified; only differences between readings and
	// the digits themselves are meaningful.
	Nanotime() int64
}

var processStart = time.Now()

type systemClock struct{}

// SystemClock returns the process clock. Nanotime advances with the
// monotonic clock and starts at the wall time of process start.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Nanotime() int64 {
	return processStart.UnixNano() + int64(time.Since(processStart))
}

type fixedClock struct {
	now   time.Time
	nanos int64
}

// FixedClock returns a Clock that always reports now and nanos.
func FixedClock(now time.Time, nanos int64) Clock {
	return fixedClock{now: now, nanos: nanos}
}

func (c fixedClock) Now() time.Time  { return c.now }
func (c fixedClock) Nanotime() int64 { return c.nanos }

// Now returns the current time of the system clock
func Now() time.Time {
	return SystemClock().Now()
}
