// File: case.go
// Title: Case Transformations
// Description: Rewrites the case of every word of a text while keeping its
//              line structure. Supports alternating, sentence and
//              capitalized (title/camel) case through a common renderer.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Identifier style snake, camel, pascal and kebab case
// - 2026-10-18 v0.3.0: Line preserving text case with policy dispatch

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/validationx"
)

// AlternatingPolicy selects which rune positions of a word are upper case.
// The zero value is unset and rejected by ToAlternatingCase.
type AlternatingPolicy int

const (
	// EvenIndexUpper upper cases positions 0, 2, 4, ...
	EvenIndexUpper AlternatingPolicy = iota + 1
	// OddIndexUpper upper cases positions 1, 3, 5, ...
	OddIndexUpper
)

// String returns the name of the policy
func (p AlternatingPolicy) String() string {
	switch p {
	case EvenIndexUpper:
		return "even"
	case OddIndexUpper:
		return "odd"
	default:
		return "unset"
	}
}

// CasePolicy selects one of the case transformations for ApplyCase.
type CasePolicy int

const (
	CaseAlternatingEven CasePolicy = iota + 1
	CaseAlternatingOdd
	CaseSentence
	CaseCapitalize

	// Title and camel case share the capitalize transformation.
	CaseTitle = CaseCapitalize
	CaseCamel = CaseCapitalize
)

var casePolicyNames = map[CasePolicy]string{
	CaseAlternatingEven: "alternating_even",
	CaseAlternatingOdd:  "alternating_odd",
	CaseSentence:        "sentence",
	CaseCapitalize:      "capitalize",
}

var casePolicyAliases = map[string]CasePolicy{
	"alternating": CaseAlternatingEven,
	"even":        CaseAlternatingEven,
	"odd":         CaseAlternatingOdd,
	"title":       CaseTitle,
	"camel":       CaseCamel,
}

// String returns the canonical name of the policy
func (p CasePolicy) String() string {
	if name, ok := casePolicyNames[p]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether p is one of the declared policies
func (p CasePolicy) Valid() bool {
	_, ok := casePolicyNames[p]
	return ok
}

// CasePolicies returns every distinct policy in declaration order
func CasePolicies() []CasePolicy {
	return []CasePolicy{CaseAlternatingEven, CaseAlternatingOdd, CaseSentence, CaseCapitalize}
}

// ParseCasePolicy resolves a policy by name. Names are case insensitive
// and '-' may be used instead of '_'.
func ParseCasePolicy(name string) (CasePolicy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if p, ok := casePolicyAliases[key]; ok {
		return p, nil
	}
	for p, n := range casePolicyNames {
		if n == key {
			return p, nil
		}
	}
	return 0, mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "parse_case_policy", name,
		"one of alternating_even, alternating_odd, sentence, capitalize, title, camel")
}

// Formatter applies case transformations using a fixed line separator.
// The zero value uses the platform LineSeparator.
type Formatter struct {
	LineSeparator string
}

// DefaultFormatter returns the formatter behind the package level functions
func DefaultFormatter() Formatter {
	return Formatter{LineSeparator: LineSeparator}
}

func (f Formatter) separator() string {
	if f.LineSeparator == "" {
		return LineSeparator
	}
	return f.LineSeparator
}

// ToAlternatingCase alternates upper and lower case inside every word.
// With EvenIndexUpper "hello" becomes "HeLlO".
func (f Formatter) ToAlternatingCase(text string, policy AlternatingPolicy) (string, error) {
	if err := validationx.RequireValidString(mdwerrors.ModuleStringx, "to_alternating_case", text); err != nil {
		return "", err
	}
	if policy != EvenIndexUpper && policy != OddIndexUpper {
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "to_alternating_case", int(policy), "even or odd policy")
	}

	evenUpper := policy == EvenIndexUpper
	return f.render(text, func(_ int, word string) string {
		var b strings.Builder
		b.Grow(len(word))
		j := 0
		for _, r := range word {
			if (j%2 == 0) == evenUpper {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			j++
		}
		return b.String()
	}, wordCount), nil
}

// ToSentenceCase capitalizes the first word of every line and lower cases
// all other words.
func (f Formatter) ToSentenceCase(text string) (string, error) {
	if err := validationx.RequireValidString(mdwerrors.ModuleStringx, "to_sentence_case", text); err != nil {
		return "", err
	}
	return f.render(text, func(i int, word string) string {
		if i == 0 {
			return capitalize(word)
		}
		return lower(word)
	}, wordCount), nil
}

// ToCapitalizeCase upper cases the first rune of every word and lower
// cases the rest.
func (f Formatter) ToCapitalizeCase(text string) (string, error) {
	if err := validationx.RequireValidString(mdwerrors.ModuleStringx, "to_capitalize_case", text); err != nil {
		return "", err
	}
	limit := utf8.RuneCountInString(text)
	return f.render(text, func(_ int, word string) string {
		return capitalize(word)
	}, func([]string) int { return limit }), nil
}

// ToTitleCase is ToCapitalizeCase.
func (f Formatter) ToTitleCase(text string) (string, error) {
	return f.ToCapitalizeCase(text)
}

// ToCamelCase is ToCapitalizeCase. Words stay separated, so the result
// is "Hello World" rather than an identifier.
func (f Formatter) ToCamelCase(text string) (string, error) {
	return f.ToCapitalizeCase(text)
}

// Apply dispatches to the transformation selected by policy.
func (f Formatter) Apply(text string, policy CasePolicy) (string, error) {
	switch policy {
	case CaseAlternatingEven:
		return f.ToAlternatingCase(text, EvenIndexUpper)
	case CaseAlternatingOdd:
		return f.ToAlternatingCase(text, OddIndexUpper)
	case CaseSentence:
		return f.ToSentenceCase(text)
	case CaseCapitalize:
		return f.ToCapitalizeCase(text)
	default:
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "apply_case", int(policy), "valid case policy")
	}
}

// render rebuilds text line by line. Every non-empty word is replaced by
// transform(index, word). After each word, empty or not, a single space
// is written unless the rune count of the whole output so far equals
// limit(words). Every line, including the last, is followed by the line
// separator.
func (f Formatter) render(text string, transform func(i int, word string) string, limit func(words []string) int) string {
	sep := f.separator()
	sepLen := utf8.RuneCountInString(sep)

	var b strings.Builder
	b.Grow(len(text) + len(sep) + 8)
	n := 0
	for _, line := range splitLines(text, sep) {
		words := splitWords(line)
		target := limit(words)
		for i, word := range words {
			if word != "" {
				out := transform(i, word)
				b.WriteString(out)
				n += utf8.RuneCountInString(out)
			}
			if n != target {
				b.WriteByte(' ')
				n++
			}
		}
		b.WriteString(sep)
		n += sepLen
	}
	return b.String()
}

func wordCount(words []string) int {
	return len(words)
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return lower(word)
	}
	return string(unicode.ToUpper(r)) + lower(word[size:])
}

func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// ToAlternatingCase applies Formatter.ToAlternatingCase with the default formatter
func ToAlternatingCase(text string, policy AlternatingPolicy) (string, error) {
	return DefaultFormatter().ToAlternatingCase(text, policy)
}

// ToSentenceCase applies Formatter.ToSentenceCase with the default formatter
func ToSentenceCase(text string) (string, error) {
	return DefaultFormatter().ToSentenceCase(text)
}

// ToTitleCase applies Formatter.ToTitleCase with the default formatter
func ToTitleCase(text string) (string, error) {
	return DefaultFormatter().ToTitleCase(text)
}

// ToCapitalizeCase applies Formatter.ToCapitalizeCase with the default formatter
func ToCapitalizeCase(text string) (string, error) {
	return DefaultFormatter().ToCapitalizeCase(text)
}

// ToCamelCase applies Formatter.ToCamelCase with the default formatter
func ToCamelCase(text string) (string, error) {
	return DefaultFormatter().ToCamelCase(text)
}

// ApplyCase applies Formatter.Apply with the default formatter
func ApplyCase(text string, policy CasePolicy) (string, error) {
	return DefaultFormatter().Apply(text, policy)
}
