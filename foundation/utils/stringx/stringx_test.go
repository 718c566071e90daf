// File: stringx_test.go
// Title: Tests for the Line and Word Tokenizer
// Description: Covers line splitting, single character word splitting and
//              the handling of empty fields.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests for core string utilities
// - 2026-10-18 v0.3.0: Tokenizer tests

package stringx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  []string
	}{
		{"no separator", "abc", "\n", []string{"abc"}},
		{"empty text", "", "\n", []string{""}},
		{"two lines", "a\nb", "\n", []string{"a", "b"}},
		{"empty middle line kept", "a\n\nb", "\n", []string{"a", "", "b"}},
		{"leading empty line kept", "\na", "\n", []string{"", "a"}},
		{"trailing empty lines dropped", "a\n\n\n", "\n", []string{"a"}},
		{"only separators", "\n\n", "\n", []string{}},
		{"crlf", "a\r\nb", "\r\n", []string{"a", "b"}},
		{"lf inside crlf text", "a\nb", "\r\n", []string{"a\nb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.input, tt.sep))
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "abc", []string{"abc"}},
		{"empty line", "", []string{""}},
		{"two words", "ab cd", []string{"ab", "cd"}},
		{"double space", "ab  cd", []string{"ab", "", "cd"}},
		{"leading space", " ab", []string{"", "ab"}},
		{"trailing spaces dropped", "ab  ", []string{"ab"}},
		{"only spaces", "   ", []string{}},
		{"all whitespace kinds", "a\tb\vc\fd\re\nf", []string{"a", "b", "c", "d", "e", "f"}},
		{"non breaking space is not a separator", "a\u00a0b", []string{"a\u00a0b"}},
		{"multibyte words", "über straße", []string{"über", "straße"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitWords(tt.input))
		})
	}
}

func TestPlatformLineSeparator(t *testing.T) {
	assert.Equal(t, "\r\n", platformLineSeparator("windows"))
	assert.Equal(t, "\n", platformLineSeparator("linux"))
	assert.Equal(t, "\n", platformLineSeparator("darwin"))
}
