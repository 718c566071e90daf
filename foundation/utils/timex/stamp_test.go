// File: stamp_test.go
// Title: Tests for Date Stamps
// Description: Covers every granularity, the 12-hour field and the
//              validation of clocks and granularities.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial tests

package timex

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

var stampTime = time.Date(2024, time.March, 9, 15, 4, 5, 678_000_000, time.Local)

func TestDateStamp(t *testing.T) {
	clock := FixedClock(stampTime, 0)

	tests := []struct {
		g    Granularity
		want string
	}{
		{UpToMonth, "202403"},
		{UpToDate, "20240309"},
		{UpToHour, "2024030903"},
		{UpToMinute, "202403090304"},
		{UpToSecond, "20240309030405"},
		{UpToMillisecond, "20240309030405678"},
	}

	for _, tt := range tests {
		t.Run(tt.g.String(), func(t *testing.T) {
			got, err := DateStamp(clock, tt.g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateStamp_TwelveHourField(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want string
	}{
		{"midnight", 0, "2024030900"},
		{"morning", 3, "2024030903"},
		{"afternoon", 15, "2024030903"},
		{"noon", 12, "2024030900"},
		{"last hour", 23, "2024030911"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2024, time.March, 9, tt.hour, 0, 0, 0, time.Local)
			got, err := DateStamp(FixedClock(at, 0), UpToHour)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateStamp_Padding(t *testing.T) {
	at := time.Date(987, time.January, 2, 1, 2, 3, 4_000_000, time.Local)
	got, err := DateStamp(FixedClock(at, 0), UpToMillisecond)
	require.NoError(t, err)
	assert.Equal(t, "09870102010203004", got)
}

func TestDateStamp_Invalid(t *testing.T) {
	_, err := DateStamp(nil, UpToDate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mdwerror.ErrInvalidInput))

	for _, g := range []Granularity{0, -1, UpToMillisecond + 1} {
		_, err := DateStamp(FixedClock(stampTime, 0), g)
		require.Error(t, err)
		assert.True(t, errors.Is(err, mdwerror.ErrInvalidInput))
	}
}

func TestDateStampNow(t *testing.T) {
	got, err := DateStampNow(UpToMillisecond)
	require.NoError(t, err)
	assert.Len(t, got, 17)
	assert.Regexp(t, `^\d{17}$`, got)
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name    string
		want    Granularity
		wantErr bool
	}{
		{"month", UpToMonth, false},
		{"UP_TO_DATE", UpToDate, false},
		{"day", UpToDate, false},
		{"upto_hour", UpToHour, false},
		{" minute ", UpToMinute, false},
		{"second", UpToSecond, false},
		{"millisecond", UpToMillisecond, false},
		{"week", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGranularity(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, mdwerror.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGranularity_String(t *testing.T) {
	assert.Equal(t, "month", UpToMonth.String())
	assert.Equal(t, "millisecond", UpToMillisecond.String())
	assert.Equal(t, "unknown", Granularity(0).String())
	assert.False(t, Granularity(0).Valid())
	assert.True(t, UpToSecond.Valid())
}
