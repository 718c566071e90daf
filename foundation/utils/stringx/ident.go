// File: ident.go
// Title: Clock Derived Alphanumeric Tokens
// Description: Turns the digits of a nanosecond clock reading into a short
//              token over the alphabet A-Z0-9.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/msto63/textkit/foundation/utils/timex"
)

// Alphabet is the symbol table of AlphaNumericFromClock
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphaNumericFromClock reads c.Nanotime() and maps its decimal digits two
// at a time: a pair forming a number below 36 becomes one symbol,
// otherwise each digit becomes its own symbol. A trailing single digit is
// mapped on its own. A nil clock means the system clock.
//
// Tokens are not unique. Two reads within the same nanosecond, or on
// clocks with coarse resolution, produce the same token.
func AlphaNumericFromClock(c timex.Clock) string {
	if c == nil {
		c = timex.SystemClock()
	}
	return alphaNumeric(c.Nanotime())
}

// AlphaNumeric returns AlphaNumericFromClock of the system clock
func AlphaNumeric() string {
	return AlphaNumericFromClock(timex.SystemClock())
}

func alphaNumeric(nanos int64) string {
	u := uint64(nanos)
	if nanos < 0 {
		u = -u
	}
	digits := strconv.FormatUint(u, 10)

	var b strings.Builder
	b.Grow(len(digits))
	i := 0
	for ; i+1 < len(digits); i += 2 {
		hi, lo := int(digits[i]-'0'), int(digits[i+1]-'0')
		if n := hi*10 + lo; n < len(Alphabet) {
			b.WriteByte(Alphabet[n])
		} else {
			b.WriteByte(Alphabet[hi])
			b.WriteByte(Alphabet[lo])
		}
	}
	if i < len(digits) {
		b.WriteByte(Alphabet[digits[i]-'0'])
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}
