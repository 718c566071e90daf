// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context propagation and
//              error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-18 v0.2.0: Command context and severity mapping tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()
	require.NotNil(t, logger)
	assert.Equal(t, DefaultLevel(), logger.GetLevel())
	assert.IsType(t, &TextFormatter{}, logger.formatter)
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelError, Format: FormatText, Output: &buf, Name: "textx"})

	assert.Equal(t, LevelError, logger.GetLevel())
	assert.Equal(t, "textx", logger.name)
	assert.Same(t, &buf, logger.output)
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "w", lines[0]["message"])
	assert.Equal(t, "e", lines[1]["message"])
	assert.True(t, logger.IsLevelEnabled(LevelError))
	assert.False(t, logger.IsLevelEnabled(LevelInfo))
}

func TestLogger_WithMethodsCopy(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	child := base.WithRequestID("req-9").WithCommand("pad").WithField("width", 5).WithName("textx")

	assert.NotSame(t, base, child)
	assert.Equal(t, LevelDebug, base.WithLevel(LevelDebug).GetLevel())
	assert.Equal(t, LevelInfo, base.GetLevel())

	child.Info("padded", Int("value", 7))
	base.Info("plain")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "req-9", lines[0]["request_id"])
	assert.Equal(t, "pad", lines[0]["command"])
	assert.Equal(t, "textx", lines[0]["logger"])
	assert.Equal(t, float64(5), lines[0]["width"])
	assert.Equal(t, float64(7), lines[0]["value"])
	assert.NotContains(t, lines[1], "request_id")
	assert.NotContains(t, lines[1], "width")
}

func TestLogger_WithFieldsDoesNotLeak(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	a := base.WithFields(Fields{"a": 1})
	_ = a.WithField("b", 2)

	a.Info("a")
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "b")
}

func TestLogger_WithOutputAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithLevel(LevelInfo).WithOutput(&buf).WithFormat(FormatText)

	logger.Warn("config fallback", String("key", "format.precision"))
	assert.Contains(t, buf.String(), "[WRN] config fallback [key=format.precision]")
}

func TestLogger_WithErr(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.ErrorWithErr("failed", errors.New("boom"))
	logger.WarnWithErr("odd", errors.New("hmm"), Field("k", "v"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "boom", lines[0]["error"])
	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "v", lines[1]["k"])
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name     string
		severity mdwerror.Severity
		want     string
	}{
		{"low", mdwerror.SeverityLow, "info"},
		{"medium", mdwerror.SeverityMedium, "warn"},
		{"high", mdwerror.SeverityHigh, "error"},
		{"critical", mdwerror.SeverityCritical, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			err := mdwerror.New("rejected").
				WithCode(mdwerror.CodeInvalidInput).
				WithSeverity(tt.severity).
				WithOperation("stringx.to_sentence_case").
				WithDetail("expected", "non-blank string")

			logger.LogError(err)

			lines := decodeLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.want, lines[0]["level"])
			assert.Equal(t, "INVALID_INPUT", lines[0]["error_code"])
			assert.Equal(t, "stringx.to_sentence_case", lines[0]["error_operation"])
			assert.Equal(t, "non-blank string", lines[0]["error_expected"])
		})
	}
}

func TestLogger_LogErrorPlainAndNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	assert.Empty(t, buf.String())

	logger.LogError(errors.New("plain"))
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "plain", lines[0]["message"])
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("n", i).Info("tick")
		}(i)
	}
	wg.Wait()

	assert.Len(t, decodeLines(t, buf), 20)
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelDebug)
	SetDefault(logger)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	assert.Len(t, decodeLines(t, buf), 4)
}
