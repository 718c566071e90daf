// File: stamp.go
// Title: Fixed Width Date Stamps
// Description: Renders the current instant as a compact digit string
//              truncated at a selectable granularity.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"strings"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/mathx"
)

// Granularity selects the last field included in a date stamp.
// The zero value is not a valid granularity.
type Granularity int

const (
	UpToMonth Granularity = iota + 1
	UpToDate
	UpToHour
	UpToMinute
	UpToSecond
	UpToMillisecond
)

var granularityNames = map[Granularity]string{
	UpToMonth:       "month",
	UpToDate:        "date",
	UpToHour:        "hour",
	UpToMinute:      "minute",
	UpToSecond:      "second",
	UpToMillisecond: "millisecond",
}

// String returns the lower case name of the granularity
func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether g is one of the declared granularities
func (g Granularity) Valid() bool {
	return g >= UpToMonth && g <= UpToMillisecond
}

// ParseGranularity resolves a name such as "minute" or "up_to_minute".
func ParseGranularity(name string) (Granularity, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(strings.TrimPrefix(key, "up_to_"), "upto_")
	if key == "day" {
		key = "date"
	}
	for g, n := range granularityNames {
		if n == key {
			return g, nil
		}
	}
	return 0, mdwerrors.InvalidInput(mdwerrors.ModuleTimex, "parse_granularity", name,
		"one of month, date, hour, minute, second, millisecond")
}

// DateStamp renders clock.Now() as year(4) month(2) day(2) hour(2)
// minute(2) second(2) millisecond(3), stopping after the field selected
// by g. The hour is the 12-hour clock field (0-11) without AM/PM, so
// 03:00 and 15:00 render identically.
func DateStamp(clock Clock, g Granularity) (string, error) {
	if clock == nil {
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleTimex, "date_stamp", nil, "non-nil clock")
	}
	if !g.Valid() {
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleTimex, "date_stamp", int(g), "valid granularity")
	}

	now := clock.Now()
	fields := []struct {
		value int
		width uint
	}{
		{now.Year(), 4},
		{int(now.Month()), 2},
		{now.Day(), 2},
		{now.Hour() % 12, 2},
		{now.Minute(), 2},
		{now.Second(), 2},
		{now.Nanosecond() / 1e6, 3},
	}

	var b strings.Builder
	b.Grow(17)
	for _, f := range fields[:int(g)+1] {
		b.WriteString(mathx.ZeroPad(f.value, f.width))
	}
	return b.String(), nil
}

// DateStampNow renders a date stamp from the system clock
func DateStampNow(g Granularity) (string, error) {
	return DateStamp(SystemClock(), g)
}
