// File: clock_test.go
// Title: Tests for the Clock Capability
// Description: Verifies the fixed clock and the monotonic behaviour of the
//              system clock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-18 v0.2.0: Clock interface tests

package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)
	clock := FixedClock(at, 42)

	assert.Equal(t, at, clock.Now())
	assert.Equal(t, at, clock.Now())
	assert.Equal(t, int64(42), clock.Nanotime())
}

func TestSystemClock_Nanotime(t *testing.T) {
	clock := SystemClock()

	first := clock.Nanotime()
	second := clock.Nanotime()
	assert.GreaterOrEqual(t, second, first)
	assert.GreaterOrEqual(t, first, processStart.UnixNano())
}

func TestSystemClock_Now(t *testing.T) {
	before := time.Now()
	got := Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}
