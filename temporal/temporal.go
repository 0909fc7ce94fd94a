// Package temporal converts between time.Time and the integer encodings of
// columnar date and timestamp columns.
//
// date32 columns store whole days since the Unix epoch, date64 and
// timestamp[ms] columns store milliseconds. Conversions floor toward the
// past, so pre-epoch instants map to negative values and every instant of a
// calendar day maps to the same date32 value.
package temporal

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

const millisPerDay = 24 * 60 * 60 * 1000

// EpochDays returns the date32 value of t: whole days between the Unix epoch
// and t, floored.
func EpochDays(t time.Time) int32 {
	ms := t.UnixMilli()
	days := ms / millisPerDay
	if ms%millisPerDay < 0 {
		days--
	}
	return int32(days)
}

// FromEpochDays returns midnight UTC of the given date32 day.
func FromEpochDays(days int32) time.Time {
	return time.UnixMilli(int64(days) * millisPerDay).UTC()
}

// EpochMillis returns the date64/timestamp[ms] value of t.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromEpochMillis returns the UTC instant of a date64/timestamp[ms] value.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// RangeOf returns the time span covered by a timestamp column, given its
// minimum and maximum statistics.
func RangeOf(min, max time.Time) timespan.TimeSpan {
	return timespan.BetweenTimes(min, max)
}
