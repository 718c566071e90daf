// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx rewrites the case of multi-line text and
//              provides charset aware byte helpers and clock derived tokens.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-18 v0.3.0: Case formatter, charset helpers and tokens

// Package stringx rewrites the case of text while keeping its lines.
//
// # Tokenizing
//
// Text is split into lines on a line separator and every line into words
// on single whitespace characters (space, tab, newline, vertical tab, form
// feed, carriage return). Two adjacent whitespace characters therefore
// produce an empty word. Trailing empty lines and words are dropped,
// leading and interior ones are kept.
//
// # Case transformations
//
//	ToAlternatingCase  "hello", EvenIndexUpper  -> "HeLlO \n"
//	ToSentenceCase     "hello WORLD"            -> "Hello world \n"
//	ToCapitalizeCase   "hello world"            -> "Hello World\n"
//
// ToTitleCase and ToCamelCase are ToCapitalizeCase. ApplyCase selects a
// transformation by CasePolicy, ParseCasePolicy resolves a policy by name.
//
// Every transformation appends the line separator after each line,
// including the last one. The space written after a word depends on the
// length of the output produced so far:
//
//   - alternating and sentence case write it unless the output length
//     equals the number of words on the current line
//   - capitalize case writes it unless the output length equals the length
//     of the whole input
//
// This keeps results identical to the established output format, which
// means a single word gets a trailing space and some inputs lose a space
// between words ("ab cd" becomes "AbCd " in alternating case). Lengths are
// counted in runes.
//
// The package functions use DefaultFormatter, whose separator is the
// platform LineSeparator. Use a Formatter value to pick "\n" or "\r\n"
// explicitly.
//
// # Charsets
//
// ByteLength, EncodeState and DecodeState work on any
// golang.org/x/text/encoding.Encoding; LookupEncoding resolves IANA names.
// A nil encoding means UTF-8.
//
// # Tokens
//
// AlphaNumericFromClock derives a short token from a nanosecond clock
// reading. Tokens are cheap but not unique.
//
// All functions are safe for concurrent use. Invalid input, meaning an
// empty or blank string or an unset policy, yields an error matching
// error.ErrInvalidInput of the foundation/core/error package.
package stringx
