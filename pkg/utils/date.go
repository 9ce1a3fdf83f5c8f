package utils

import (
	"time"
)

// ISOTimestampLayout matches the UTC millisecond form consumers of the brief expect, e.g. 2026-10-18T06:30:00.000Z.
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOTimestamp formats t in UTC with millisecond precision.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// TimeNowUTC is swapped out in tests.
var TimeNowUTC = func() time.Time {
	return time.Now().UTC()
}
