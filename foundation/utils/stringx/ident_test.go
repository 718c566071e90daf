// File: ident_test.go
// Title: Tests for Clock Derived Tokens
// Description: Checks the digit pair mapping against fixed clock readings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial tests

package stringx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/msto63/textkit/foundation/utils/timex"
)

func TestAlphaNumericFromClock(t *testing.T) {
	tests := []struct {
		name  string
		nanos int64
		want  string
	}{
		{"zero", 0, "A"},
		{"pair below 36", 12, "M"},
		{"pair 35", 35, "9"},
		{"pair 36 splits", 36, "DG"},
		{"leading zero digit of pair", 1005, "KF"},
		{"pair between 26 and 35 maps to a digit", 29, "3"},
		{"pairs 26 and 34", 2634, "08"},
		{"mixed pairs", 1234567890, "M8FGHIJA"},
		{"trailing single digit", 123, "MD"},
		{"trailing zero digit", 100, "KA"},
		{"negative reading uses magnitude", -12, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlphaNumericFromClock(timex.FixedClock(time.Time{}, tt.nanos))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlphaNumeric_SystemClock(t *testing.T) {
	for _, token := range []string{AlphaNumeric(), AlphaNumericFromClock(nil)} {
		assert.NotEmpty(t, token)
		for _, r := range token {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected symbol %q", r)
		}
	}
}
