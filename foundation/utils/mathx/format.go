// File: format.go
// Title: Numeric Formatting
// Description: Renders floats with a fixed number of decimals and integers
//              with left zero padding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Decimal type with rounding modes
// - 2026-10-18 v0.2.0: Replaced by float formatting on shopspring/decimal

package mathx

import (
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/shopspring/decimal"
)

// RoundingMode defines how the last kept decimal digit is rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds ties away from zero (2.5 -> 3, -2.5 -> -3)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds ties to the even neighbour (2.5 -> 2)
	RoundingModeHalfEven

	// RoundingModeDown drops the extra digits
	RoundingModeDown
)

// String returns the name of the rounding mode
func (m RoundingMode) String() string {
	switch m {
	case RoundingModeHalfUp:
		return "half_up"
	case RoundingModeHalfEven:
		return "half_even"
	case RoundingModeDown:
		return "down"
	default:
		return "unknown"
	}
}

// FormatToDecimals renders value with exactly precision fraction digits
// using RoundingModeHalfUp. Integral values that fit in an int64 are
// rendered without a decimal point regardless of precision.
//
// Rounding applies to the shortest decimal form of value, so 5.255 rounds
// to "5.26" even though its binary value is slightly below 5.255.
func FormatToDecimals(value float64, precision uint) string {
	return FormatToDecimalsMode(value, precision, RoundingModeHalfUp)
}

// FormatToDecimalsMode is FormatToDecimals with an explicit rounding mode.
func FormatToDecimalsMode(value float64, precision uint, mode RoundingMode) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	if whole, err := safecast.Convert[int64](value); err == nil {
		return strconv.FormatInt(whole, 10)
	}

	places, err := safecast.Conv[int32](precision)
	if err != nil {
		places = math.MaxInt32
	}

	d := decimal.NewFromFloat(value)
	switch mode {
	case RoundingModeHalfEven:
		d = d.RoundBank(places)
	case RoundingModeDown:
		d = d.Truncate(places)
	default:
		d = d.Round(places)
	}
	return d.StringFixed(places)
}

// ZeroPad renders value in base 10 and left pads it with '0' up to width.
// Longer renderings are returned unchanged and a leading '-' counts
// towards the width.
func ZeroPad(value int, width uint) string {
	s := strconv.Itoa(value)
	w, err := safecast.Conv[int](width)
	if err != nil || len(s) >= w {
		return s
	}
	return strings.Repeat("0", w-len(s)) + s
}
