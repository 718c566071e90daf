// Package mathx provides numeric formatting helpers for the textkit
// foundation.
//
// Package: mathx
// Title: Numeric Formatting
// Description: FormatToDecimals renders floats with a fixed number of
//              decimals, dropping the fraction for integral values.
//              ZeroPad renders fixed width integer fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Decimal, Money and business calculations
// - 2026-10-18 v0.2.0: Reduced to float and integer formatting
//
// Rounding
//
// Fraction digits are rounded on the shortest decimal representation of
// the float (github.com/shopspring/decimal), not on its exact binary value:
//
//	mathx.FormatToDecimals(5.255, 2) // "5.26"
//	mathx.FormatToDecimals(5.0, 2)   // "5"
//
// FormatToDecimalsMode selects half-even or truncating rounding instead.
//
// Padding
//
//	mathx.ZeroPad(7, 3)    // "007"
//	mathx.ZeroPad(1234, 3) // "1234"
package mathx
