// File: benchmark_test.go
// Title: Performance Benchmarks for stringx
// Description: Benchmarks for the tokenizer and the case transformations.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-18 v0.3.0: Case formatter benchmarks

package stringx

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("the quick brown fox jumps over the lazy dog\n", 50)

func BenchmarkSplitWords(b *testing.B) {
	line := "the quick brown fox jumps over the lazy dog"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = splitWords(line)
	}
}

func BenchmarkToAlternatingCase(b *testing.B) {
	f := Formatter{LineSeparator: "\n"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.ToAlternatingCase(benchText, EvenIndexUpper)
	}
}

func BenchmarkToSentenceCase(b *testing.B) {
	f := Formatter{LineSeparator: "\n"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.ToSentenceCase(benchText)
	}
}

func BenchmarkToCapitalizeCase(b *testing.B) {
	f := Formatter{LineSeparator: "\n"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.ToCapitalizeCase(benchText)
	}
}

func BenchmarkAlphaNumericFromClock(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = alphaNumeric(int64(i) * 7919)
	}
}
