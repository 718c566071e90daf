// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text and console formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with formatter tests
// - 2026-10-18 v0.2.0: Adapted to command context and sorted fields

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func sampleEntry() *Entry {
	e := NewEntry(LevelInfo, "case applied")
	e.Timestamp = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	e.RequestID = "req-1"
	e.Command = "case"
	e.Fields = Fields{"policy": "sentence", "lines": 2}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "unknown", Format(9).String())
}

func TestJSONFormatter(t *testing.T) {
	e := sampleEntry()
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\n"))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &data))
	assert.Equal(t, "info", data["level"])
	assert.Equal(t, "case applied", data["message"])
	assert.Equal(t, "req-1", data["request_id"])
	assert.Equal(t, "case", data["command"])
	assert.Equal(t, "sentence", data["policy"])
	assert.Equal(t, float64(2), data["lines"])
	assert.Equal(t, 1.5, data["duration_ms"])
	assert.Equal(t, "2026-10-18T09:30:00Z", data["timestamp"])
}

func TestJSONFormatter_StructuredError(t *testing.T) {
	e := sampleEntry()
	e.Error = mdwerror.New("bad text").WithCode(mdwerror.CodeInvalidInput)

	out, err := NewJSONFormatter().Format(e)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &data))
	assert.Equal(t, "bad text", data["error"])
	details, ok := data["error_details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INVALID_INPUT", details["code"])
}

func TestJSONFormatter_PlainError(t *testing.T) {
	e := sampleEntry()
	e.Error = errors.New("boom")

	out, err := NewJSONFormatter().Format(e)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"error":"boom"`)
	assert.NotContains(t, string(out), "error_details")
}

func TestTextFormatter(t *testing.T) {
	e := sampleEntry()
	e.Logger = "textx"
	e.Error = errors.New("boom")

	out, err := NewTextFormatter().Format(e)
	require.NoError(t, err)
	assert.Equal(t,
		`09:30:00.000 [INF] {textx} (req=req-1,cmd=case) case applied [lines=2 policy=sentence] error="boom"`+"\n",
		string(out))
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	e := NewEntry(LevelWarn, "fallback")
	out, err := f.Format(e)
	require.NoError(t, err)
	assert.Equal(t, "[WRN] fallback\n", string(out))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := NewConsoleFormatter().Format(sampleEntry())
	require.NoError(t, err)
	assert.Contains(t, string(out), "INF")
	assert.Contains(t, string(out), "case applied")
	assert.True(t, strings.HasSuffix(string(out), "\n"))
}

func TestGetFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, GetFormatter(FormatJSON))
	assert.IsType(t, &TextFormatter{}, GetFormatter(FormatText))
	assert.IsType(t, &ConsoleFormatter{}, GetFormatter(FormatConsole))
	assert.IsType(t, &TextFormatter{}, GetFormatter(Format(42)))
}
