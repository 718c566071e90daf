// File: stringx.go
// Title: Line and Word Tokenizer
// Description: Splits text into lines on a line separator and lines into
//              words on single whitespace characters. Empty fields between
//              separators are kept, trailing empty fields are dropped.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Unicode safe helpers
// - 2026-10-18 v0.3.0: Reduced to the tokenizer behind the case formatter

package stringx

import (
	"runtime"
	"strings"

	"github.com/msto63/textkit/foundation/utils/slicex"
)

// LineSeparator is the line separator of the host platform
var LineSeparator = platformLineSeparator(runtime.GOOS)

func platformLineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// splitLines splits text on sep. A text without sep is a single line.
func splitLines(text, sep string) []string {
	if sep == "" || !strings.Contains(text, sep) {
		return []string{text}
	}
	return slicex.TrimRight(strings.Split(text, sep), "")
}

// splitWords splits line on every single whitespace rune. Consecutive
// separators produce empty words. A line without separators, including
// the empty line, is a single word.
func splitWords(line string) []string {
	var words []string
	start := 0
	for i, r := range line {
		if isWordSeparator(r) {
			words = append(words, line[start:i])
			start = i + 1
		}
	}
	if words == nil {
		return []string{line}
	}
	words = append(words, line[start:])
	return slicex.TrimRight(words, "")
}

func isWordSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
